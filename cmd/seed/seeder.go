package main

import (
	"context"
	"errors"
	"fmt"

	"quotation_service/internal/domain/entities"
	"quotation_service/internal/usecase"

	"github.com/sirupsen/logrus"
)

type userRegistrar interface {
	Register(ctx context.Context, in usecase.CreateUserInput) (entities.User, error)
}

// seeder bootstraps the demo accounts and the starter catalog. Users that
// already exist are kept; the catalog is only written into an empty store.
type seeder struct {
	users   userRegistrar
	catalog usecase.ICatalogUseCase
	log     logrus.FieldLogger
}

var seedUsers = []usecase.CreateUserInput{
	{Name: "Admin User", Email: "admin@nexlead.com", Password: "admin123", Role: entities.RoleAdmin},
	{Name: "Sales Agent", Email: "agent@nexlead.com", Password: "agent123", Role: entities.RoleSalesAgent},
}

var seedServices = []entities.Service{
	{Name: "Basic Website", Category: entities.CategoryWebsiteDevelopment, Description: "Professional basic website with up to 5 pages", BasePrice: 999, Type: entities.BillingOneTime},
	{Name: "Advanced Website", Category: entities.CategoryWebsiteDevelopment, Description: "Advanced website with custom features and CMS", BasePrice: 2499, Type: entities.BillingOneTime},
	{Name: "IDX Integration", Category: entities.CategoryWebsiteDevelopment, Description: "Real estate IDX integration for property listings", BasePrice: 1499, Type: entities.BillingOneTime},
	{Name: "Full-time VA", Category: entities.CategoryVirtualAssistant, Description: "Full-time virtual assistant (40 hours/week)", BasePrice: 1200, Type: entities.BillingMonthly},
	{Name: "Part-time VA", Category: entities.CategoryVirtualAssistant, Description: "Part-time virtual assistant (20 hours/week)", BasePrice: 600, Type: entities.BillingMonthly},
	{Name: "Content Creation", Category: entities.CategorySocialMedia, Description: "Monthly social media content creation", BasePrice: 500, Type: entities.BillingMonthly},
	{Name: "Ad Campaigns", Category: entities.CategorySocialMedia, Description: "Social media advertising campaigns management", BasePrice: 800, Type: entities.BillingMonthly},
	{Name: "Logo Design", Category: entities.CategoryBrandedKit, Description: "Professional logo design", BasePrice: 299, Type: entities.BillingOneTime},
	{Name: "Brand Guidelines", Category: entities.CategoryBrandedKit, Description: "Complete brand guidelines document", BasePrice: 499, Type: entities.BillingOneTime},
	{Name: "Collateral Templates", Category: entities.CategoryBrandedKit, Description: "Business cards, letterheads, and marketing collateral templates", BasePrice: 399, Type: entities.BillingOneTime},
	{Name: "NexLead CRM Setup", Category: entities.CategoryCRM, Description: "Complete CRM setup and configuration", BasePrice: 999, Type: entities.BillingOneTime},
	{Name: "Lead Automation", Category: entities.CategoryCRM, Description: "Automated lead management system", BasePrice: 299, Type: entities.BillingMonthly},
	{Name: "Pipeline Management", Category: entities.CategoryCRM, Description: "Sales pipeline management and tracking", BasePrice: 199, Type: entities.BillingMonthly},
}

var seedAddons = []entities.Addon{
	{Name: "SEO Optimization", Category: entities.CategoryWebsiteDevelopment, Description: "Basic SEO optimization", Price: 299, Type: entities.BillingOneTime},
	{Name: "SSL Certificate", Category: entities.CategoryWebsiteDevelopment, Description: "SSL certificate installation", Price: 99, Type: entities.BillingOneTime},
	{Name: "Email Marketing", Category: entities.CategorySocialMedia, Description: "Email marketing campaigns", Price: 200, Type: entities.BillingMonthly},
	{Name: "Video Editing", Category: entities.CategorySocialMedia, Description: "Social media video editing", Price: 300, Type: entities.BillingMonthly},
}

// Positions in seedServices making up the all-in-one bundle: Basic Website,
// Full-time VA, Content Creation and NexLead CRM Setup.
var allInOneServices = []int{0, 3, 5, 10}

func (s *seeder) Seed(ctx context.Context) error {
	admin, err := s.seedUsers(ctx)
	if err != nil {
		return err
	}
	return s.seedCatalog(ctx, admin)
}

// seedUsers registers the demo accounts and returns the admin caller used for
// catalog writes.
func (s *seeder) seedUsers(ctx context.Context) (entities.Caller, error) {
	var admin entities.Caller
	for _, in := range seedUsers {
		u, err := s.users.Register(ctx, in)
		switch {
		case errors.Is(err, usecase.ErrUserExists):
			s.log.WithField("email", in.Email).Info("[seed] user already exists")
			if in.Role == entities.RoleAdmin {
				// Catalog writes only check the role.
				admin = entities.Caller{UserID: "seed", Role: entities.RoleAdmin}
			}
			continue
		case err != nil:
			return entities.Caller{}, fmt.Errorf("register %s: %w", in.Email, err)
		}
		s.log.WithFields(logrus.Fields{"email": u.Email, "role": u.Role}).Info("[seed] created user")
		if u.Role == entities.RoleAdmin {
			admin = entities.Caller{UserID: u.ID, Role: u.Role}
		}
	}
	return admin, nil
}

func (s *seeder) seedCatalog(ctx context.Context, admin entities.Caller) error {
	existing, err := s.catalog.ListServices(ctx)
	if err != nil {
		return fmt.Errorf("list services: %w", err)
	}
	if len(existing) > 0 {
		s.log.WithField("services", len(existing)).Info("[seed] catalog already populated")
		return nil
	}

	created := make([]entities.Service, 0, len(seedServices))
	for _, svc := range seedServices {
		out, err := s.catalog.CreateService(ctx, admin, svc)
		if err != nil {
			return fmt.Errorf("create service %s: %w", svc.Name, err)
		}
		created = append(created, out)
	}
	s.log.WithField("count", len(created)).Info("[seed] created services")

	for _, a := range seedAddons {
		if _, err := s.catalog.CreateAddon(ctx, admin, a); err != nil {
			return fmt.Errorf("create addon %s: %w", a.Name, err)
		}
	}
	s.log.WithField("count", len(seedAddons)).Info("[seed] created add-ons")

	ids := make([]string, 0, len(allInOneServices))
	for _, i := range allInOneServices {
		ids = append(ids, created[i].ID)
	}
	bundle := entities.Bundle{
		Name:          "All-in-One Solution",
		Description:   "Complete real estate solution package with website, VA, marketing, and CRM",
		ServiceIDs:    ids,
		DiscountType:  entities.DiscountPercentage,
		DiscountValue: 15,
	}
	if _, err := s.catalog.CreateBundle(ctx, admin, bundle); err != nil {
		return fmt.Errorf("create bundle: %w", err)
	}
	s.log.Info("[seed] created All-in-One bundle with 15% discount")
	return nil
}
