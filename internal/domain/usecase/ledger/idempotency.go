package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
)

// roundReferencePrefix namespaces the reference ids of game round settlements
const roundReferencePrefix = "game-round:"

// RoundReference returns the transaction reference id of a game round
func RoundReference(roundID string) string {
	return roundReferencePrefix + roundID
}

// IdempotencyHandler rejects a reference id already used on the same wallet
// within the duplicate window. Round references are checked against the
// wallet's whole history since a round settles once.
type IdempotencyHandler struct {
	window       coreport.Duration
	timeProvider coreport.TimeProvider
}

// NewIdempotencyHandler creates a new IdempotencyHandler. A zero window
// checks the wallet's whole history.
func NewIdempotencyHandler(window coreport.Duration, timeProvider coreport.TimeProvider) *IdempotencyHandler {
	return &IdempotencyHandler{
		window:       window,
		timeProvider: timeProvider,
	}
}

// CheckReference must run inside the unit of work that holds the wallet lock
func (h *IdempotencyHandler) CheckReference(
	ctx context.Context,
	repo persistence.TransactionRepository,
	walletID uint64,
	referenceID string,
) error {
	if referenceID == "" {
		return nil
	}

	var since time.Time
	if h.window > 0 && !strings.HasPrefix(referenceID, roundReferencePrefix) {
		since = h.timeProvider.Now().Add(-h.window.Std())
	}

	existing, found, err := repo.FindByReference(ctx, walletID, referenceID, since)
	if err != nil {
		return fmt.Errorf("failed to check reference id: %w", err)
	}
	if found {
		return errs.NewDuplicateReferenceError(walletID, referenceID, existing.ID)
	}
	return nil
}
