package main

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/talentflow/recruitment-api/internal/config"
	"github.com/talentflow/recruitment-api/pkg/logx"
	"github.com/talentflow/recruitment-api/recruitment/candidate"
	"github.com/talentflow/recruitment-api/recruitment/candidate/candidateapi"
	"github.com/talentflow/recruitment-api/recruitment/candidate/candidateinfra"
	"github.com/talentflow/recruitment-api/recruitment/candidate/candidatesrv"
	"github.com/talentflow/recruitment-api/recruitment/joboffer/jobofferapi"
	"github.com/talentflow/recruitment-api/recruitment/joboffer/jobofferinfra"
	"github.com/talentflow/recruitment-api/recruitment/joboffer/joboffersrv"
)

const legacyHealthCacheTTL = 30 * time.Second

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// Infrastructure
	DB           *sqlx.DB
	Redis        *redis.Client
	LegacySyncer candidate.LegacySyncer

	// Services
	CandidateService *candidatesrv.CandidateService
	JobOfferService  *joboffersrv.JobOfferService

	// API Handlers
	CandidateHandlers *candidateapi.Handlers
	JobOfferHandlers  *jobofferapi.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	db, err := sqlx.Connect("postgres", c.Config.DSN())
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.RedisAddr,
		Password: c.Config.RedisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. Legacy System Client
	legacyClient := candidateinfra.NewLegacyAPIClient(c.Config.LegacyAPIURL, c.Config.LegacyAPIKey)
	c.LegacySyncer = candidateinfra.NewCachedLegacySyncer(legacyClient, c.Redis, legacyHealthCacheTTL)
}

func (c *Container) initServices() {
	// --- Repositories ---
	candidateRepo := candidateinfra.NewPostgresCandidateRepository(c.DB)
	jobOfferRepo := jobofferinfra.NewPostgresJobOfferRepository(c.DB)

	// --- Domain Services ---
	c.CandidateService = candidatesrv.NewCandidateService(candidateRepo, c.LegacySyncer)
	c.JobOfferService = joboffersrv.NewJobOfferService(jobOfferRepo)

	// --- Handlers ---
	c.CandidateHandlers = candidateapi.NewHandlers(c.CandidateService)
	c.JobOfferHandlers = jobofferapi.NewHandlers(c.JobOfferService)
}
