package accounting

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
)

const verifyBatchSize = 500

// VerifyIssue is one inconsistency found in the ledger
type VerifyIssue struct {
	WalletID      uint64
	TransactionID uint64
	Problem       string
}

// VerifyResult summarizes a full ledger check
type VerifyResult struct {
	Wallets      int
	Transactions int
	Issues       []VerifyIssue

	// Stored is the operating balance as persisted; Replayed is recomputed
	// from the whole transaction log
	Stored   *entity.OperatingBalance
	Replayed entity.OperatingBalance
}

// OK reports whether no issue was found
func (r *VerifyResult) OK() bool {
	return len(r.Issues) == 0
}

// AggregatesMatchLog reports whether the stored totals equal the replayed ones.
// A mismatch while continuations are in flight is expected.
func (r *VerifyResult) AggregatesMatchLog() bool {
	if r.Stored == nil {
		return false
	}
	return r.Stored.TotalDeposits == r.Replayed.TotalDeposits &&
		r.Stored.TotalWithdrawals == r.Replayed.TotalWithdrawals &&
		r.Stored.TotalBets == r.Replayed.TotalBets &&
		r.Stored.TotalPayouts == r.Replayed.TotalPayouts
}

// Verifier checks every wallet chain and the operating balance identity
type Verifier struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewVerifier creates a new ledger verifier
func NewVerifier(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Verifier {
	return &Verifier{uow: uow, timeProvider: timeProvider, logger: logger}
}

// Verify walks the whole ledger. Inconsistencies are collected in the result;
// an error means the store could not be read.
func (v *Verifier) Verify(ctx context.Context) (*VerifyResult, error) {
	result := &VerifyResult{}

	walletRepo := v.uow.GetWalletRepository(ctx)
	var afterID uint64
	for {
		wallets, err := walletRepo.List(ctx, afterID, verifyBatchSize)
		if err != nil {
			return nil, fmt.Errorf("failed to list wallets: %w", err)
		}
		for _, w := range wallets {
			count, err := v.verifyWallet(ctx, w, result)
			if err != nil {
				return nil, err
			}
			result.Wallets++
			result.Transactions += count
		}
		if len(wallets) < verifyBatchSize {
			break
		}
		afterID = wallets[len(wallets)-1].ID
	}

	if err := v.verifyOperatingBalance(ctx, result); err != nil {
		return nil, err
	}

	v.logger.Info("Ledger verified", map[string]any{
		"wallets":      result.Wallets,
		"transactions": result.Transactions,
		"issues":       len(result.Issues),
	})
	return result, nil
}

// verifyWallet replays a wallet's chain from zero and compares the outcome
// with the stored balance and lifetime totals
func (v *Verifier) verifyWallet(ctx context.Context, wallet *entity.Wallet, result *VerifyResult) (int, error) {
	txRepo := v.uow.GetTransactionRepository(ctx)

	var (
		balance, credits, debits int64
		afterID                  uint64
		count                    int
	)
	for {
		txs, err := txRepo.ListByWallet(ctx, wallet.ID, afterID, verifyBatchSize)
		if err != nil {
			return 0, fmt.Errorf("failed to list transactions of wallet %d: %w", wallet.ID, err)
		}

		for _, tx := range txs {
			if tx.BalanceBefore != balance {
				result.Issues = append(result.Issues, VerifyIssue{
					WalletID:      wallet.ID,
					TransactionID: tx.ID,
					Problem: fmt.Sprintf("chain gap: balance_before %s, previous balance_after %s",
						entity.AmountInCentsToString(tx.BalanceBefore), entity.AmountInCentsToString(balance)),
				})
			}
			if err := tx.Validate(); err != nil {
				result.Issues = append(result.Issues, VerifyIssue{
					WalletID:      wallet.ID,
					TransactionID: tx.ID,
					Problem:       err.Error(),
				})
			}

			delta := tx.BalanceAfter - tx.BalanceBefore
			if delta > 0 {
				credits += delta
			} else {
				debits -= delta
			}
			balance = tx.BalanceAfter
			count++
		}

		if len(txs) < verifyBatchSize {
			break
		}
		afterID = txs[len(txs)-1].ID
	}

	if balance != wallet.Balance() {
		result.Issues = append(result.Issues, VerifyIssue{
			WalletID: wallet.ID,
			Problem: fmt.Sprintf("balance %s does not match ledger %s",
				entity.AmountInCentsToString(wallet.Balance()), entity.AmountInCentsToString(balance)),
		})
	}
	if credits != wallet.TotalCredits() || debits != wallet.TotalDebits() {
		result.Issues = append(result.Issues, VerifyIssue{
			WalletID: wallet.ID,
			Problem: fmt.Sprintf("totals credits=%s debits=%s do not match ledger credits=%s debits=%s",
				entity.AmountInCentsToString(wallet.TotalCredits()), entity.AmountInCentsToString(wallet.TotalDebits()),
				entity.AmountInCentsToString(credits), entity.AmountInCentsToString(debits)),
		})
	}
	return count, nil
}

func (v *Verifier) verifyOperatingBalance(ctx context.Context, result *VerifyResult) error {
	stored, err := v.uow.GetOperatingBalanceRepository(ctx).Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to read operating balance: %w", err)
	}
	result.Stored = stored

	if !stored.IsConsistent() {
		result.Issues = append(result.Issues, VerifyIssue{
			Problem: fmt.Sprintf("operating profit %s is not bets %s minus payouts %s",
				entity.AmountInCentsToString(stored.OperatingProfit),
				entity.AmountInCentsToString(stored.TotalBets),
				entity.AmountInCentsToString(stored.TotalPayouts)),
		})
	}

	txRepo := v.uow.GetTransactionRepository(ctx)
	cutoff := v.timeProvider.Now().Add(coreport.Hour.Std())
	now := v.timeProvider.Now()

	var afterID uint64
	for {
		batch, err := txRepo.ListAfter(ctx, afterID, cutoff, verifyBatchSize)
		if err != nil {
			return fmt.Errorf("failed to list transactions after %d: %w", afterID, err)
		}
		for _, tx := range batch {
			result.Replayed.Apply(entity.OperatingDeltaFor(tx), now)
		}
		if len(batch) < verifyBatchSize {
			break
		}
		afterID = batch[len(batch)-1].ID
	}
	return nil
}
