package kernel

import "strconv"

type CandidateID int64

func NewCandidateID(id int64) CandidateID { return CandidateID(id) }
func (id CandidateID) Int64() int64       { return int64(id) }
func (id CandidateID) String() string     { return strconv.FormatInt(int64(id), 10) }

type JobOfferID int64

func NewJobOfferID(id int64) JobOfferID { return JobOfferID(id) }
func (id JobOfferID) Int64() int64      { return int64(id) }
func (id JobOfferID) String() string    { return strconv.FormatInt(int64(id), 10) }
