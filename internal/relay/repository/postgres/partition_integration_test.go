package postgres

import (
	"github.com/golang/mock/gomock"
)

func (s *RepositorySuite) TestEnsurePartitionCreatesTablesAndConstraints() {
	s.metrics.EXPECT().Observe("ensure_partition", gomock.Nil(), gomock.Any()).Times(1)

	created, err := s.repo.EnsurePartition(s.testCtx, 2235)
	s.Require().NoError(err)
	s.True(created)

	schema := SchemaName(2235)

	var tables []string
	rows, err := s.repo.readPool.Query(s.testCtx, `
SELECT table_name
FROM information_schema.tables
WHERE table_schema = $1
ORDER BY table_name`, schema)
	s.Require().NoError(err)
	defer rows.Close()

	for rows.Next() {
		var name string
		s.Require().NoError(rows.Scan(&name))
		tables = append(tables, name)
	}
	s.Require().NoError(rows.Err())
	s.Equal([]string{"blocks", "transactions"}, tables)

	var constraint string
	err = s.repo.readPool.QueryRow(s.testCtx, `
SELECT conname
FROM pg_constraint
WHERE conname = 'fk_transactions_slot' AND connamespace = $1::regnamespace`, schema).Scan(&constraint)
	s.Require().NoError(err)
	s.Equal("fk_transactions_slot", constraint)
}

func (s *RepositorySuite) TestEnsurePartitionExistingSchemaIsBenign() {
	s.metrics.EXPECT().Observe("ensure_partition", gomock.Nil(), gomock.Any()).Times(2)

	created, err := s.repo.EnsurePartition(s.testCtx, 552)
	s.Require().NoError(err)
	s.True(created)

	created, err = s.repo.EnsurePartition(s.testCtx, 552)
	s.Require().NoError(err)
	s.False(created)
}

func (s *RepositorySuite) TestPrepareForSlotProvisionsCurrentAndNextEpoch() {
	s.metrics.EXPECT().Observe("ensure_partition", gomock.Nil(), gomock.Any()).Times(4)

	created, err := s.repo.PrepareForSlot(s.testCtx, 150_000)
	s.Require().NoError(err)
	s.True(created)

	var count int
	err = s.repo.readPool.QueryRow(s.testCtx, `
SELECT count(*)
FROM information_schema.schemata
WHERE schema_name IN ($1, $2)`, SchemaName(1), SchemaName(2)).Scan(&count)
	s.Require().NoError(err)
	s.Equal(2, count)

	created, err = s.repo.PrepareForSlot(s.testCtx, 150_000)
	s.Require().NoError(err)
	s.False(created)
}
