package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fund(t *testing.T, svc *Service, points int) {
	t.Helper()
	if _, err := svc.LedgerRepo().Append(context.Background(), points, "test_grant", time.Now().UTC()); err != nil {
		t.Fatalf("fund ledger: %v", err)
	}
}

func TestSeededRewardCatalog(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	rewards, err := svc.ListRewards(context.Background())
	if err != nil {
		t.Fatalf("ListRewards: %v", err)
	}
	if len(rewards) != 5 {
		t.Fatalf("seeded rewards=%d, want 5", len(rewards))
	}
	if rewards[0].Name != "Espresso or fancy tea" || rewards[0].CostPoints != 8 {
		t.Fatalf("unexpected first seed: %+v", rewards[0])
	}
}

func TestRedeemDebitsExactCost(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	reward, err := svc.CreateReward(ctx, CreateRewardInput{Name: "Walk", CostPoints: 4, CooldownMin: 0})
	if err != nil {
		t.Fatalf("CreateReward: %v", err)
	}
	fund(t, svc, 10)

	balance, err := svc.Redeem(ctx, reward.ID)
	if err != nil {
		t.Fatalf("Redeem: %v", err)
	}
	if balance != 6 {
		t.Fatalf("balance=%d, want 6", balance)
	}

	recomputed, _ := svc.LedgerRepo().Balance(ctx)
	if recomputed != 6 {
		t.Fatalf("recomputed balance=%d, want 6", recomputed)
	}

	entries, err := svc.ListLedger(ctx)
	if err != nil {
		t.Fatalf("ListLedger: %v", err)
	}
	if entries[0].Delta != -4 || entries[0].Reason != "redeem:Walk" {
		t.Fatalf("unexpected ledger head: %+v", entries[0])
	}
}

func TestRedeemInsufficientPoints(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	reward, _ := svc.CreateReward(ctx, CreateRewardInput{Name: "Feast", CostPoints: 50})
	fund(t, svc, 10)

	_, err := svc.Redeem(ctx, reward.ID)
	var ip InsufficientPointsError
	if !errors.As(err, &ip) {
		t.Fatalf("err=%v, want InsufficientPointsError", err)
	}
	if ip.Cost != 50 || ip.Balance != 10 {
		t.Fatalf("error detail=%+v", ip)
	}

	// The failed attempt must not touch the ledger.
	balance, _ := svc.LedgerRepo().Balance(ctx)
	if balance != 10 {
		t.Fatalf("balance=%d, want 10", balance)
	}
}

func TestRedeemNotFound(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	_, err := svc.Redeem(context.Background(), 9999)
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err=%v, want NotFoundError", err)
	}
}

func TestRedeemCooldown(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	reward, _ := svc.CreateReward(ctx, CreateRewardInput{Name: "Tea", CostPoints: 2, CooldownMin: 60})
	fund(t, svc, 100)

	at := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	setNow(svc, at)
	if _, err := svc.Redeem(ctx, reward.ID); err != nil {
		t.Fatalf("first redeem: %v", err)
	}

	setNow(svc, at.Add(30*time.Minute))
	_, err := svc.Redeem(ctx, reward.ID)
	var cd CooldownError
	if !errors.As(err, &cd) {
		t.Fatalf("err=%v, want CooldownError", err)
	}
	if !cd.ReadyAt.Equal(at.Add(60 * time.Minute)) {
		t.Fatalf("ReadyAt=%v, want %v", cd.ReadyAt, at.Add(60*time.Minute))
	}

	setNow(svc, at.Add(61*time.Minute))
	if _, err := svc.Redeem(ctx, reward.ID); err != nil {
		t.Fatalf("redeem after cooldown: %v", err)
	}

	balance, _ := svc.LedgerRepo().Balance(ctx)
	if balance != 96 {
		t.Fatalf("balance=%d, want 96", balance)
	}
}
