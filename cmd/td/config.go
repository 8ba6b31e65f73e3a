package main

import (
	"fmt"
	"os"
	"path/filepath"

	"todo/internal/config"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// StoreFactory creates the task stores based on environment
type StoreFactory struct {
	env Environment
}

// NewStoreFactory creates a new store factory for the given environment
func NewStoreFactory(env Environment) *StoreFactory {
	return &StoreFactory{env: env}
}

// CreateStores creates the pending and completed stores for the current environment
func (sf *StoreFactory) CreateStores(cfg *config.Config) (*config.Stores, error) {
	switch sf.env {
	case Development:
		return sf.createDevelopmentStores(cfg)
	case Testing:
		return sf.createTestingStores()
	default:
		return config.CreateStores(cfg) // Default to production
	}
}

// createDevelopmentStores keeps data in .td under the working directory
func (sf *StoreFactory) createDevelopmentStores(cfg *config.Config) (*config.Stores, error) {
	dev := *cfg
	dev.Storage.DataDir = filepath.Join(".", ".td")

	stores, err := config.CreateStores(&dev)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development storage: %w", err)
	}
	return stores, nil
}

// createTestingStores uses an in-memory database
func (sf *StoreFactory) createTestingStores() (*config.Stores, error) {
	stores, err := config.CreateTestStores()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize testing storage: %w", err)
	}
	return stores, nil
}

// getEnvironment determines the current environment from TD_ENV
func getEnvironment() Environment {
	switch os.Getenv("TD_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	case "production":
		return Production
	default:
		// Default to production for safety
		return Production
	}
}
