package postgres

import (
	"go.uber.org/zap"

	"github.com/goodnatureofminers/relaynode7000-backend/internal/relay/epoch"
)

func (s *RepositorySuite) TestNewRepositoryRequiresRole() {
	schedule, err := epoch.NewSchedule(suiteSlotsPerEpoch)
	s.Require().NoError(err)

	repo, err := NewRepository(s.testCtx, Config{
		DSN:  s.dsn,
		Role: "r_does_not_exist",
	}, schedule, s.metrics, zap.NewNop())
	s.Require().ErrorIs(err, ErrMissingRole)
	s.Nil(repo)
}
