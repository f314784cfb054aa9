package saves_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/planebound/planebound-api/internal/entities"
	"github.com/planebound/planebound-api/internal/errors"
	"github.com/planebound/planebound-api/internal/repositories/saves"
	"github.com/planebound/planebound-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    saves.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := saves.NewRedis(&saves.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func testSave(turn int) *entities.SaveData {
	state := entities.NewGameState()
	state.Phase = entities.PhasePlaying
	state.CurrentTurn = turn
	state.Location = "the Ember Wastes"

	return &entities.SaveData{
		Version:   "1.0.0",
		Timestamp: 1748779200,
		State:     state,
	}
}

func (s *RedisRepositoryTestSuite) TestPutAndGetRoundTrip() {
	_, err := s.repo.Put(s.ctx, saves.PutInput{Slot: "slot-1", Save: testSave(7)})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, saves.GetInput{Slot: "slot-1"})
	s.Require().NoError(err)
	s.Equal("1.0.0", out.Save.Version)
	s.Equal(7, out.Save.State.CurrentTurn)
	s.Equal("the Ember Wastes", out.Save.State.Location)
	s.Equal(entities.PhasePlaying, out.Save.State.Phase)
}

func (s *RedisRepositoryTestSuite) TestPutOverwritesSlot() {
	_, err := s.repo.Put(s.ctx, saves.PutInput{Slot: "slot-1", Save: testSave(1)})
	s.Require().NoError(err)
	_, err = s.repo.Put(s.ctx, saves.PutInput{Slot: "slot-1", Save: testSave(9)})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, saves.GetInput{Slot: "slot-1"})
	s.Require().NoError(err)
	s.Equal(9, out.Save.State.CurrentTurn)

	list, err := s.repo.List(s.ctx, saves.ListInput{})
	s.Require().NoError(err)
	s.Len(list.Slots, 1)
}

func (s *RedisRepositoryTestSuite) TestPutValidation() {
	_, err := s.repo.Put(s.ctx, saves.PutInput{Slot: "", Save: testSave(1)})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, saves.PutInput{Slot: "slot-1", Save: nil})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetEmptySlot() {
	_, err := s.repo.Get(s.ctx, saves.GetInput{Slot: "slot-404"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteRemovesSlot() {
	_, err := s.repo.Put(s.ctx, saves.PutInput{Slot: "slot-1", Save: testSave(1)})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, saves.DeleteInput{Slot: "slot-1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, saves.GetInput{Slot: "slot-1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, saves.DeleteInput{Slot: "slot-1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListReturnsSortedSummaries() {
	_, err := s.repo.Put(s.ctx, saves.PutInput{Slot: "slot-b", Save: testSave(2)})
	s.Require().NoError(err)
	_, err = s.repo.Put(s.ctx, saves.PutInput{Slot: "slot-a", Save: testSave(1)})
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, saves.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Slots, 2)
	s.Equal("slot-a", out.Slots[0].Slot)
	s.Equal("slot-b", out.Slots[1].Slot)
	s.Equal("1.0.0", out.Slots[0].Version)
	s.Equal(int64(1748779200), out.Slots[0].Timestamp)
}

func (s *RedisRepositoryTestSuite) TestListEmpty() {
	out, err := s.repo.List(s.ctx, saves.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Slots)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	repo saves.Repository
	ctx  context.Context
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.repo = saves.NewInMemory()
	s.ctx = context.Background()
}

func (s *InMemoryRepositoryTestSuite) TestPutGetDeleteList() {
	_, err := s.repo.Put(s.ctx, saves.PutInput{Slot: "slot-1", Save: testSave(3)})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, saves.GetInput{Slot: "slot-1"})
	s.Require().NoError(err)
	s.Equal(3, out.Save.State.CurrentTurn)

	list, err := s.repo.List(s.ctx, saves.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Slots, 1)
	s.Equal("slot-1", list.Slots[0].Slot)

	_, err = s.repo.Delete(s.ctx, saves.DeleteInput{Slot: "slot-1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, saves.GetInput{Slot: "slot-1"})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestGetReturnsDetachedCopy() {
	_, err := s.repo.Put(s.ctx, saves.PutInput{Slot: "slot-1", Save: testSave(3)})
	s.Require().NoError(err)

	first, err := s.repo.Get(s.ctx, saves.GetInput{Slot: "slot-1"})
	s.Require().NoError(err)
	first.Save.State.CurrentTurn = 99

	second, err := s.repo.Get(s.ctx, saves.GetInput{Slot: "slot-1"})
	s.Require().NoError(err)
	s.Equal(3, second.Save.State.CurrentTurn)
}

func TestInMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}
