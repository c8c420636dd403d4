package main

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"propfinder/internal/config"
	"propfinder/internal/db"
	"propfinder/internal/model"
	"propfinder/internal/repository"
)

// Demo dataset for local development. Running the seed twice is harmless:
// existing usernames are skipped.
var demoUsers = []model.User{
	{Username: "demo_alice", WalletAddress: "0x3f5CE5FBFe3E9af3971dD833D26bA9b5C936f0bE"},
	{Username: "demo_bob", WalletAddress: "0x53d284357ec70cE289D6D64134DfAc8E511c8a3D"},
}

type demoProperty struct {
	owner       string
	title       string
	location    string
	price       int64
	description string
	bedrooms    int
	bathrooms   int
	areaSqm     float64
}

var demoProperties = []demoProperty{
	{owner: "demo_alice", title: "Beach House", location: "Canggu, Bali", price: 250000,
		description: "Two-story beach house a short walk from the shore.", bedrooms: 3, bathrooms: 2, areaSqm: 180},
	{owner: "demo_alice", title: "City Loft", location: "South Jakarta", price: 120000,
		description: "Compact loft near the MRT.", bedrooms: 1, bathrooms: 1, areaSqm: 55},
	{owner: "demo_bob", title: "Hillside Villa", location: "Ubud, Bali", price: 410000,
		description: "Villa with rice-terrace views and a private pool.", bedrooms: 4, bathrooms: 3, areaSqm: 320},
}

func main() {
	logrus.Info("starting seed script")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logrus.Fatalf("connect database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Property{},
		&model.MediaUpload{},
		&model.TokenTransaction{},
	); err != nil {
		logrus.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	propertyRepo := repository.NewPropertyRepository(gormDB)

	owners := make(map[string]*model.User, len(demoUsers))
	for i := range demoUsers {
		user := demoUsers[i]
		existing, err := userRepo.FindByUsername(ctx, user.Username)
		if err == nil {
			logrus.Infof("user %s already present, skipping", user.Username)
			owners[user.Username] = existing
			continue
		}
		if err := userRepo.Create(ctx, &user); err != nil {
			logrus.Fatalf("create user %s: %v", user.Username, err)
		}
		owners[user.Username] = &user
		logrus.Infof("created user %s (%s)", user.Username, user.ID)
	}

	created := 0
	for _, p := range demoProperties {
		owner := owners[p.owner]
		bedrooms, bathrooms, areaSqm := p.bedrooms, p.bathrooms, p.areaSqm
		property := model.Property{
			Title:       p.title,
			Location:    p.location,
			Price:       decimal.NewFromInt(p.price),
			Description: p.description,
			Bedrooms:    &bedrooms,
			Bathrooms:   &bathrooms,
			AreaSqm:     &areaSqm,
			UserID:      &owner.ID,
		}
		if err := propertyRepo.Create(ctx, &property); err != nil {
			logrus.Fatalf("create property %q: %v", p.title, err)
		}
		created++
	}

	logrus.Infof("seed complete: %d users, %d properties", len(owners), created)
}
