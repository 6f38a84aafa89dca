//go:build integration

package faq_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"tipline/internal/faq/models"
	"tipline/internal/faq/store/faq"
	id "tipline/pkg/domain"
	"tipline/pkg/platform/sentinel"
	"tipline/pkg/testutil/containers"
)

type PostgresFAQStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *faq.PostgresFAQStore
	now      id.UTCInstant
}

func TestPostgresFAQStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresFAQStoreSuite))
}

func (s *PostgresFAQStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = faq.NewPostgres(s.postgres.DB)

	now, err := id.ParseUTCInstant("2023-06-01T10:00:00Z")
	s.Require().NoError(err)
	s.now = now
}

func (s *PostgresFAQStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "faqs"))
}

func (s *PostgresFAQStoreSuite) newFAQ(question, category string) *models.FAQ {
	entry, err := models.NewFAQ(id.NewFAQID(), question, "answer", category, s.now)
	s.Require().NoError(err)
	return entry
}

func (s *PostgresFAQStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	entry := s.newFAQ("How do tips expire?", "tips")

	s.Require().NoError(s.store.Create(ctx, entry))

	loaded, err := s.store.FindByID(ctx, entry.ID)
	s.Require().NoError(err)
	s.Equal(*entry, *loaded)
}

func (s *PostgresFAQStoreSuite) TestRoundTripWithoutCategory() {
	ctx := context.Background()
	entry := s.newFAQ("Is there an app?", "")

	s.Require().NoError(s.store.Create(ctx, entry))

	loaded, err := s.store.FindByID(ctx, entry.ID)
	s.Require().NoError(err)
	s.Empty(loaded.Category)
}

func (s *PostgresFAQStoreSuite) TestCreateConflict() {
	ctx := context.Background()
	entry := s.newFAQ("How do tips expire?", "tips")

	s.Require().NoError(s.store.Create(ctx, entry))
	s.ErrorIs(s.store.Create(ctx, entry), sentinel.ErrConflict)
}

func (s *PostgresFAQStoreSuite) TestUpdate() {
	ctx := context.Background()
	entry := s.newFAQ("How do tips expire?", "tips")
	s.Require().NoError(s.store.Create(ctx, entry))

	answer := "Weather tips are swept a day after creation."
	later, err := s.now.AddDays(1)
	s.Require().NoError(err)
	s.Require().NoError(entry.Apply(models.FAQUpdate{Answer: &answer}, later))

	s.Require().NoError(s.store.Update(ctx, entry))

	loaded, err := s.store.FindByID(ctx, entry.ID)
	s.Require().NoError(err)
	s.Equal(answer, loaded.Answer)
	s.Equal(later, loaded.UpdatedAt)
}

func (s *PostgresFAQStoreSuite) TestUpdateMissing() {
	entry := s.newFAQ("How do tips expire?", "tips")
	s.ErrorIs(s.store.Update(context.Background(), entry), sentinel.ErrNotFound)
}

func (s *PostgresFAQStoreSuite) TestDelete() {
	ctx := context.Background()
	entry := s.newFAQ("How do tips expire?", "tips")
	s.Require().NoError(s.store.Create(ctx, entry))

	s.Require().NoError(s.store.Delete(ctx, entry.ID))

	_, err := s.store.FindByID(ctx, entry.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
	s.ErrorIs(s.store.Delete(ctx, entry.ID), sentinel.ErrNotFound)
}

func (s *PostgresFAQStoreSuite) TestFindAll() {
	ctx := context.Background()
	first := s.newFAQ("How do tips expire?", "tips")
	s.Require().NoError(s.store.Create(ctx, first))

	laterTime, err := s.now.AddDays(1)
	s.Require().NoError(err)
	second, err := models.NewFAQ(id.NewFAQID(), "Is there an app?", "answer", "general", laterTime)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Create(ctx, second))

	all, err := s.store.FindAll(ctx, "")
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(first.ID, all[0].ID, "entries come back oldest first")

	tipsOnly, err := s.store.FindAll(ctx, "tips")
	s.Require().NoError(err)
	s.Require().Len(tipsOnly, 1)
	s.Equal(first.ID, tipsOnly[0].ID)
}
