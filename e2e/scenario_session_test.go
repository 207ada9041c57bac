package e2e

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"note-relay/domain"
	"note-relay/instrument"
	"note-relay/repositories"
	"note-relay/stage"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type testSessionSuite struct {
	BaseGrpcSuite
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, &testSessionSuite{})
}

func (s *testSessionSuite) openRoster(log *slog.Logger) repositories.InstrumentRepository {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = db.Close() })
	return repositories.NewInstrumentRepository(db, log)
}

func (s *testSessionSuite) TestRemoteKeyboardMirrorsOwner() {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	alice := s.Join(s.T(), "alice")
	bob := s.Join(s.T(), "bob")

	bobStage := stage.New(log, bob, bob, s.openRoster(log))
	defer bobStage.Close()

	// --- STEP 1: BOB MIRRORS ALICE ---
	mirror := instrument.NewKeyboard("alice", io.Discard, false)
	s.Run("Step 1: Bob attaches a sink for Alice", func() {
		_, err := stage.Attach[string](bobStage, "alice keys", alice.LocalID(), mirror)
		s.Require().NoError(err)
		s.Require().True(mirror.Ready())
		s.Require().Equal(alice.LocalID(), mirror.Owner())
	})

	// --- STEP 2: ALICE PLAYS ---
	aliceStage := stage.New(log, alice, alice, s.openRoster(log))
	defer aliceStage.Close()
	keys := instrument.NewKeyboard("alice", io.Discard, false)
	s.Run("Step 2: Alice presses C4", func() {
		router, err := stage.AttachLocal[string](aliceStage, "keys", keys)
		s.Require().NoError(err)
		s.Require().NoError(router.Play(domain.Pressed, "C4"))
		s.Require().Equal([]string{"C4"}, keys.Held())
	})

	// --- STEP 3: BOB HEARS IT ---
	s.Run("Step 3: The note reaches Bob's mirror", func() {
		s.Require().Eventually(func() bool {
			held := mirror.Held()
			return len(held) == 1 && held[0] == "C4"
		}, 5*time.Second, 20*time.Millisecond)
	})
}
