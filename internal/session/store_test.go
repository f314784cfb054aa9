package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/planebound/planebound-api/internal/entities"
	"github.com/planebound/planebound-api/internal/errors"
	"github.com/planebound/planebound-api/internal/pkg/clock"
	"github.com/planebound/planebound-api/internal/pkg/idgen"
	"github.com/planebound/planebound-api/internal/session"
)

type StoreTestSuite struct {
	suite.Suite
	store *session.Store
}

func (s *StoreTestSuite) SetupTest() {
	store, err := session.New(&session.Config{
		IDGenerator: idgen.NewSequential("item"),
		Clock:       clock.NewFixed(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		BossCatalog: testCatalog(),
	})
	s.Require().NoError(err)
	s.store = store
}

func testCatalog() []*entities.Boss {
	return []*entities.Boss{
		{
			ID:        "boss-ashmaw",
			Name:      "Ashmaw the Devourer",
			Health:    120,
			MaxHealth: 120,
			Abilities: []string{"Consuming Flame"},
		},
		{
			ID:        "boss-null-warden",
			Name:      "The Null Warden",
			Health:    140,
			MaxHealth: 140,
			Abilities: []string{"Void Lock"},
		},
	}
}

func (s *StoreTestSuite) startGame(playerCount int) {
	s.Require().NoError(s.store.StartNewGame(playerCount, nil))
}

func (s *StoreTestSuite) TestNewStoreStartsInMenuPhase() {
	state := s.store.State()
	s.Equal(entities.PhaseMenu, state.Phase)
	s.Empty(state.Players)
	s.Equal("normal", state.Settings.Difficulty)
	s.True(state.Settings.SoundEnabled)
	s.True(state.Settings.AutoSaveEnabled)
}

func (s *StoreTestSuite) TestStartNewGameAssignsSequentialPlayerIDs() {
	err := s.store.StartNewGame(2, []string{"Mira"})
	s.Require().NoError(err)

	state := s.store.State()
	s.Equal(entities.PhasePlaying, state.Phase)
	s.Equal(1, state.CurrentTurn)
	s.Require().Len(state.Players, 2)
	s.Equal("player-1", state.Players[0].ID)
	s.Equal("Mira", state.Players[0].Name)
	s.Equal("player-2", state.Players[1].ID)
	s.Equal("Player 2", state.Players[1].Name)
	s.Equal(20, state.Players[0].Health)
}

func (s *StoreTestSuite) TestStartNewGameRejectsBadPlayerCount() {
	s.Error(s.store.StartNewGame(0, nil))
	s.Error(s.store.StartNewGame(5, nil))

	err := s.store.StartNewGame(0, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *StoreTestSuite) TestStartBossEncounterSnapshotsCatalogBoss() {
	s.startGame(1)

	err := s.store.StartBossEncounter("boss-ashmaw")
	s.Require().NoError(err)

	state := s.store.State()
	s.Equal(entities.PhaseBoss, state.Phase)
	s.Require().NotNil(state.CurrentBoss)
	s.Equal("boss-ashmaw", state.CurrentBoss.ID)
	s.Equal(120, state.CurrentBoss.Health)
	s.Nil(state.CurrentEncounter)
}

func (s *StoreTestSuite) TestStartBossEncounterUnknownID() {
	s.startGame(1)

	err := s.store.StartBossEncounter("boss-nobody")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *StoreTestSuite) TestDamageBossClampsAtZeroAndDefeats() {
	s.startGame(1)
	s.Require().NoError(s.store.StartBossEncounter("boss-ashmaw"))

	s.Require().NoError(s.store.DamageBoss(50))
	state := s.store.State()
	s.Equal(70, state.CurrentBoss.Health)

	s.Require().NoError(s.store.DamageBoss(500))
	state = s.store.State()
	s.Nil(state.CurrentBoss)
	s.Equal(entities.PhasePlaying, state.Phase)
	s.True(state.DefeatedBossIDs["boss-ashmaw"])
}

func (s *StoreTestSuite) TestDamageBossRejectsNegativeAmount() {
	s.startGame(1)
	s.Require().NoError(s.store.StartBossEncounter("boss-ashmaw"))

	err := s.store.DamageBoss(-30)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	// Health never climbs above where it was
	state := s.store.State()
	s.Equal(120, state.CurrentBoss.Health)
}

func (s *StoreTestSuite) TestDamageBossWithoutActiveBoss() {
	s.startGame(1)

	err := s.store.DamageBoss(10)
	s.Require().Error(err)
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
}

func (s *StoreTestSuite) TestDefeatingEveryBossIsVictory() {
	s.startGame(1)

	events := s.collectEvents()

	s.Require().NoError(s.store.StartBossEncounter("boss-ashmaw"))
	s.Require().NoError(s.store.DefeatCurrentBoss())
	s.Equal(entities.PhasePlaying, s.store.State().Phase)

	s.Require().NoError(s.store.StartBossEncounter("boss-null-warden"))
	s.Require().NoError(s.store.DefeatCurrentBoss())
	s.Equal(entities.PhaseVictory, s.store.State().Phase)

	var defeats []entities.BossDefeatedPayload
	for _, e := range *events {
		if e.Type == entities.ChangeBossDefeated {
			defeats = append(defeats, e.Payload.(entities.BossDefeatedPayload))
		}
	}
	s.Require().Len(defeats, 2)
	s.False(defeats[0].Victory)
	s.True(defeats[1].Victory)

	s.Empty(s.store.GetUndefeatedBosses())
	stats := s.store.GetStats()
	s.Equal(2, stats.DefeatedBosses)
	s.Equal(2, stats.TotalBosses)
}

func (s *StoreTestSuite) TestDefeatedCatalogBossStaysDown() {
	s.startGame(1)
	s.Require().NoError(s.store.StartBossEncounter("boss-ashmaw"))
	s.Require().NoError(s.store.DefeatCurrentBoss())

	// Starting the same boss again replays the catalog entry as-is.
	s.Require().NoError(s.store.StartBossEncounter("boss-ashmaw"))
	state := s.store.State()
	s.True(state.CurrentBoss.Defeated)
	s.Equal(0, state.CurrentBoss.Health)
}

func (s *StoreTestSuite) TestPlayCardMovesWithoutDuplication() {
	s.startGame(1)
	s.store.AddCardToHand("player-1", entities.Card{ID: "card-1", Name: "Ember Drake"})
	s.store.AddCardToHand("player-1", entities.Card{ID: "card-2", Name: "Counterglyph"})

	s.store.PlayCard("player-1", "card-1", "")

	player := s.store.GetPlayer("player-1")
	s.Require().NotNil(player)
	s.Len(player.Hand, 1)
	s.Equal("card-2", player.Hand[0].ID)
	s.Require().Len(player.Battlefield, 1)
	s.Equal("card-1", player.Battlefield[0].ID)

	// Replaying a card already on the battlefield changes nothing.
	s.store.PlayCard("player-1", "card-1", "")
	player = s.store.GetPlayer("player-1")
	s.Len(player.Hand, 1)
	s.Len(player.Battlefield, 1)
}

func (s *StoreTestSuite) TestPlayCardToGraveyard() {
	s.startGame(1)
	s.store.AddCardToHand("player-1", entities.Card{ID: "card-1", Name: "Brittle Ward"})

	s.store.PlayCard("player-1", "card-1", entities.ZoneGraveyard)

	player := s.store.GetPlayer("player-1")
	s.Empty(player.Hand)
	s.Empty(player.Battlefield)
	s.Require().Len(player.Graveyard, 1)
	s.Equal("card-1", player.Graveyard[0].ID)
}

func (s *StoreTestSuite) TestCardOperationsIgnoreUnknownPlayer() {
	s.startGame(1)

	events := s.collectEvents()

	s.store.AddCardToHand("player-99", entities.Card{ID: "card-1"})
	s.store.PlayCard("player-99", "card-1", "")

	s.Empty(*events)
	s.Nil(s.store.GetPlayer("player-99"))
}

func (s *StoreTestSuite) TestAddToInventoryAssignsID() {
	s.startGame(1)

	item := s.store.AddToInventory(entities.Item{Name: "Waystone Shard"})
	s.Equal("item-1", item.ID)

	state := s.store.State()
	s.Require().Len(state.Inventory, 1)
	s.Equal("item-1", state.Inventory[0].ID)
}

func (s *StoreTestSuite) TestQuestProgressClampAndCompletion() {
	s.startGame(1)

	quest := s.store.AddQuest(entities.Quest{Title: "Clear the Crossroads"})
	s.NotEmpty(quest.ID)
	s.Equal(entities.QuestStatusActive, quest.Status)
	s.Equal(0, quest.Progress)

	s.Require().NoError(s.store.UpdateQuestProgress(quest.ID, 150))
	state := s.store.State()
	s.Equal(100, state.Quests[0].Progress)
	s.Equal(entities.QuestStatusCompleted, state.Quests[0].Status)

	s.Require().NoError(s.store.UpdateQuestProgress(quest.ID, -5))
	state = s.store.State()
	s.Equal(0, state.Quests[0].Progress)
	s.Equal(entities.QuestStatusActive, state.Quests[0].Status)

	err := s.store.UpdateQuestProgress("quest-unknown", 10)
	s.True(errors.IsNotFound(err))
}

func (s *StoreTestSuite) TestAddQuestDiscardsCallerID() {
	s.startGame(1)

	first := s.store.AddQuest(entities.Quest{ID: "client-chosen", Title: "Clear the Crossroads"})
	second := s.store.AddQuest(entities.Quest{Title: "Scout the Gloamwood"})

	// The store owns quest identity, so a supplied id is replaced
	s.Equal("item-1", first.ID)
	s.Equal("item-2", second.ID)
}

func (s *StoreTestSuite) TestResetGamePreservesSettings() {
	s.startGame(2)
	difficulty := "hard"
	soundOff := false
	s.store.UpdateSettings(entities.SettingsPatch{
		Difficulty:   &difficulty,
		SoundEnabled: &soundOff,
	})
	s.store.ChangeLocation("the Sunken Archive")

	s.store.ResetGame()

	state := s.store.State()
	s.Equal(entities.PhaseMenu, state.Phase)
	s.Empty(state.Players)
	s.Equal("hard", state.Settings.Difficulty)
	s.False(state.Settings.SoundEnabled)
	s.True(state.Settings.AutoSaveEnabled)
}

func (s *StoreTestSuite) TestResetGameRestoresCatalog() {
	s.startGame(1)
	s.Require().NoError(s.store.StartBossEncounter("boss-ashmaw"))
	s.Require().NoError(s.store.DefeatCurrentBoss())

	s.store.ResetGame()

	for _, boss := range s.store.GetBosses() {
		s.Equal(boss.MaxHealth, boss.Health)
		s.False(boss.Defeated)
	}
}

func (s *StoreTestSuite) TestLoadRoundTripsTurnAndLocation() {
	save := s.store.SaveGame()
	save.State.Phase = entities.PhasePlaying
	save.State.CurrentTurn = 7
	save.State.Location = "the Gloamwood"

	s.Require().NoError(s.store.LoadGame(save))

	reloaded := s.store.SaveGame()
	s.Equal(7, reloaded.State.CurrentTurn)
	s.Equal("the Gloamwood", reloaded.State.Location)
}

func (s *StoreTestSuite) TestSaveAndLoadRoundTrip() {
	s.startGame(2)
	s.store.ChangeLocation("the Ember Wastes")
	s.store.AddCardToHand("player-1", entities.Card{ID: "card-1", Name: "Ember Drake"})
	s.Require().NoError(s.store.StartBossEncounter("boss-ashmaw"))
	s.Require().NoError(s.store.DefeatCurrentBoss())

	save := s.store.SaveGame()
	s.Equal("1.0.0", save.Version)
	s.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).Unix(), save.Timestamp)

	// Wreck the live session, then restore it.
	s.store.ResetGame()
	s.Require().NoError(s.store.LoadGame(save))

	state := s.store.State()
	s.Equal(entities.PhasePlaying, state.Phase)
	s.Equal("the Ember Wastes", state.Location)
	s.Require().Len(state.Players, 2)
	s.Len(state.Players[0].Hand, 1)
	s.True(state.DefeatedBossIDs["boss-ashmaw"])

	stats := s.store.GetStats()
	s.Equal(1, stats.DefeatedBosses)
	s.Equal(2, stats.TotalBosses)
}

func (s *StoreTestSuite) TestLoadGameRejectsMalformedSave() {
	s.startGame(1)
	s.store.ChangeLocation("the Ember Wastes")
	before := s.store.State()

	err := s.store.LoadGame(nil)
	s.True(errors.IsInvalidArgument(err))

	err = s.store.LoadGame(&entities.SaveData{Version: "1.0.0"})
	s.True(errors.IsInvalidArgument(err))

	err = s.store.LoadGame(&entities.SaveData{
		Version: "1.0.0",
		State:   &entities.GameState{Phase: "corrupted"},
	})
	s.True(errors.IsInvalidArgument(err))

	after := s.store.State()
	s.Equal(before.Phase, after.Phase)
	s.Equal(before.Location, after.Location)
	s.Len(after.Players, len(before.Players))
}

func (s *StoreTestSuite) TestSaveDataIsDetachedFromStore() {
	s.startGame(1)
	save := s.store.SaveGame()

	save.State.Location = "tampered"
	save.GameData.Bosses[0].Health = -1

	state := s.store.State()
	s.NotEqual("tampered", state.Location)
	s.Equal(120, s.store.GetBosses()[0].Health)
}

func (s *StoreTestSuite) TestObserversNotifiedInOrder() {
	var order []string
	s.store.Subscribe(func(entities.ChangeEvent) { order = append(order, "first") })
	s.store.Subscribe(func(entities.ChangeEvent) { order = append(order, "second") })

	s.store.ChangeLocation("the Gloamwood")

	s.Equal([]string{"first", "second"}, order)
}

func (s *StoreTestSuite) TestObserverPanicDoesNotStopDispatch() {
	var delivered []entities.ChangeType
	s.store.Subscribe(func(entities.ChangeEvent) { panic("observer bug") })
	s.store.Subscribe(func(e entities.ChangeEvent) { delivered = append(delivered, e.Type) })

	s.store.ChangeLocation("the Gloamwood")
	s.startGame(1)

	s.Equal([]entities.ChangeType{
		entities.ChangeLocationChanged,
		entities.ChangeGameStarted,
	}, delivered)
}

func (s *StoreTestSuite) TestUnsubscribeStopsDelivery() {
	var count int
	sub := s.store.Subscribe(func(entities.ChangeEvent) { count++ })

	s.store.ChangeLocation("a")
	s.store.Unsubscribe(sub)
	s.store.ChangeLocation("b")

	s.Equal(1, count)

	// Unknown handles are ignored
	s.store.Unsubscribe(session.Subscription(9999))
}

func (s *StoreTestSuite) TestObserverCanReadBackIntoStore() {
	var seenLocation string
	s.store.Subscribe(func(e entities.ChangeEvent) {
		if e.Type == entities.ChangeLocationChanged {
			seenLocation = s.store.State().Location
		}
	})

	s.store.ChangeLocation("the Gloamwood")

	s.Equal("the Gloamwood", seenLocation)
}

func (s *StoreTestSuite) TestStateSnapshotIsIsolated() {
	s.startGame(1)
	s.store.AddCardToHand("player-1", entities.Card{ID: "card-1"})

	state := s.store.State()
	state.Players[0].Hand[0].ID = "mutated"
	state.Location = "mutated"

	fresh := s.store.State()
	s.Equal("card-1", fresh.Players[0].Hand[0].ID)
	s.NotEqual("mutated", fresh.Location)
}

func (s *StoreTestSuite) collectEvents() *[]entities.ChangeEvent {
	events := &[]entities.ChangeEvent{}
	s.store.Subscribe(func(e entities.ChangeEvent) {
		*events = append(*events, e)
	})
	return events
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
