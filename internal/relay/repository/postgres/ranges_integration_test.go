package postgres

import (
	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/relaynode7000-backend/internal/relay/model"
)

func (s *RepositorySuite) TestPartitionRangesAndCoverage() {
	// Narrow epochs keep the seeded slots small: epoch 1 spans [12, 23],
	// epoch 2 spans [24, 35].
	repo := s.newRepository(12)
	defer repo.Close()

	s.metrics.EXPECT().Observe("ensure_partition", gomock.Nil(), gomock.Any()).Times(2)
	s.metrics.EXPECT().Observe("partition_ranges", gomock.Nil(), gomock.Any()).Times(4)

	for _, epochNum := range []uint64{1, 2} {
		created, err := repo.EnsurePartition(s.testCtx, epochNum)
		s.Require().NoError(err)
		s.Require().True(created)
	}

	for _, slot := range []uint64{10, 20} {
		s.seedBlockRow(SchemaName(1), slot)
	}
	for _, slot := range []uint64{25, 30} {
		s.seedBlockRow(SchemaName(2), slot)
	}

	ranges, err := repo.PartitionRanges(s.testCtx)
	s.Require().NoError(err)
	s.Equal(map[uint64]model.SlotRange{
		1: {Min: 10, Max: 20},
		2: {Min: 25, Max: 30},
	}, ranges)

	global, err := repo.GlobalRange(s.testCtx)
	s.Require().NoError(err)
	s.Equal(model.SlotRange{Min: 10, Max: 30}, global)

	// Slot 22 belongs to epoch 1 but sits past that partition's stored range.
	covered, err := repo.IsSlotCovered(s.testCtx, 22)
	s.Require().NoError(err)
	s.False(covered)

	covered, err = repo.IsSlotCovered(s.testCtx, 15)
	s.Require().NoError(err)
	s.True(covered)
}

func (s *RepositorySuite) TestGlobalRangeWithoutPartitions() {
	s.metrics.EXPECT().Observe("partition_ranges", gomock.Nil(), gomock.Any()).Times(1)

	_, err := s.repo.GlobalRange(s.testCtx)
	s.Require().ErrorIs(err, ErrNoSlotRange)
}

func (s *RepositorySuite) TestIsSlotCoveredMissingPartition() {
	s.metrics.EXPECT().Observe("partition_ranges", gomock.Nil(), gomock.Any()).Times(1)

	covered, err := s.repo.IsSlotCovered(s.testCtx, 223_555_999)
	s.Require().NoError(err)
	s.False(covered)
}
