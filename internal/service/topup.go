package service

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/rolandaayo/Astral-cu/internal/repository"
)

// Daily credit bounds, inclusive, in whole dollars.
const (
	topUpMinDollars = 5
	topUpMaxDollars = 10
)

// TopUpSummary reports one top-up run.
type TopUpSummary struct {
	ToppedUpCount int `json:"toppedUpCount"`
	EligibleCount int `json:"eligibleCount"`
}

// TopUpStatus lists every user's balance.
type TopUpStatus struct {
	TotalUsers int                `json:"totalUsers"`
	Users      []TopUpStatusEntry `json:"users"`
}

// TopUpStatusEntry is one user's balance line.
type TopUpStatusEntry struct {
	Email   string  `json:"email"`
	Balance float64 `json:"balance"`
}

// TopUpDetails lists per-user eligibility for today's credit.
type TopUpDetails struct {
	TotalUsers    int                 `json:"totalUsers"`
	EligibleCount int                 `json:"eligibleForTopUp"`
	Users         []TopUpDetailsEntry `json:"users"`
}

// TopUpDetailsEntry is one user's eligibility line.
type TopUpDetailsEntry struct {
	Email            string     `json:"email"`
	Balance          float64    `json:"balance"`
	LastTopUp        *time.Time `json:"lastTopUp"`
	EligibleForTopUp bool       `json:"eligibleForTopUp"`
}

// TopUpService credits every eligible user once per calendar day with a
// random $5-$10 amount. Eligibility and the credit are one conditional
// update, so overlapping runs never double-credit.
type TopUpService struct {
	users  repository.UserRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewTopUpService creates a new TopUpService
func NewTopUpService(users repository.UserRepository, logger *slog.Logger) *TopUpService {
	return &TopUpService{
		users:  users,
		logger: logger,
		now:    time.Now,
	}
}

// Run performs one top-up cycle over all eligible users.
func (s *TopUpService) Run(ctx context.Context) (*TopUpSummary, error) {
	now := s.now()
	dayStart := startOfDay(now)

	ids, err := s.users.ListTopUpEligible(ctx, dayStart)
	if err != nil {
		return nil, storeError("failed to list eligible users", err)
	}

	summary := &TopUpSummary{EligibleCount: len(ids)}

	for _, id := range ids {
		dollars := topUpMinDollars + rand.IntN(topUpMaxDollars-topUpMinDollars+1)
		credited, err := s.users.CreditTopUp(ctx, id, int64(dollars)*100, dayStart, s.now())
		if err != nil {
			// One failed credit must not abort the rest of the cycle.
			s.logger.Error("failed to credit top-up", "user_id", id, "error", err)
			continue
		}
		if credited {
			summary.ToppedUpCount++
			s.logger.Debug("top-up credited", "user_id", id, "amount_dollars", dollars)
		}
	}

	s.logger.Info("daily top-up completed",
		"topped_up", summary.ToppedUpCount,
		"eligible", summary.EligibleCount,
	)

	return summary, nil
}

// Status returns every user's balance.
func (s *TopUpService) Status(ctx context.Context) (*TopUpStatus, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, storeError("failed to list users", err)
	}

	status := &TopUpStatus{
		TotalUsers: len(users),
		Users:      make([]TopUpStatusEntry, 0, len(users)),
	}
	for _, u := range users {
		status.Users = append(status.Users, TopUpStatusEntry{
			Email:   u.Email,
			Balance: u.BalanceDollars(),
		})
	}

	return status, nil
}

// Details returns per-user eligibility for today's credit.
func (s *TopUpService) Details(ctx context.Context) (*TopUpDetails, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, storeError("failed to list users", err)
	}

	dayStart := startOfDay(s.now())

	details := &TopUpDetails{
		TotalUsers: len(users),
		Users:      make([]TopUpDetailsEntry, 0, len(users)),
	}
	for _, u := range users {
		eligible := u.LastTopUp == nil || u.LastTopUp.Before(dayStart)
		if eligible {
			details.EligibleCount++
		}
		details.Users = append(details.Users, TopUpDetailsEntry{
			Email:            u.Email,
			Balance:          u.BalanceDollars(),
			LastTopUp:        u.LastTopUp,
			EligibleForTopUp: eligible,
		})
	}

	return details, nil
}
