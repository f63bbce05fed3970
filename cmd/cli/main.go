package main

import (
	"context"
	"fmt"
	"os"

	"github.com/benaja-bendo/Le-creuset-backend/infra/initializer"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/app"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/metal"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  seed-admin                          create the admin from SEED_* settings
  mail-test                           send a test email to MAIL_ADMIN_EMAIL
  pending                             list accounts awaiting review
  weights <user_id>                   show the metal accounts of a user
  credit  <account_id> <amount> <label>
  debit   <account_id> <amount> <label>`

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return
	}
	if err := run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd string, args []string) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	deps, cleanup, err := initializer.InitializeDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	a := app.New(deps, cfg)

	switch cmd {
	case "seed-admin":
		return initializer.SeedAdmin(ctx, a.UserService, cfg.Seed, deps.Logger)
	case "mail-test":
		res := a.UserService.SendTestMail(ctx)
		if !res.Success {
			return fmt.Errorf("test email was not delivered")
		}
		fmt.Printf("Test email sent: id=%s\n", res.ID)
	case "pending":
		users, err := a.UserService.ListPending(ctx)
		if err != nil {
			return err
		}
		for _, u := range users {
			fmt.Printf("%s\t%s\t%s\t%s\n", u.ID, u.Email, u.CompanyName, u.CreatedAt.Format("2006-01-02"))
		}
	case "weights":
		if len(args) < 1 {
			return fmt.Errorf("usage: weights <user_id>")
		}
		userID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id: %w", err)
		}
		accounts, err := a.MetalService.ListForUser(ctx, userID)
		if err != nil {
			return err
		}
		for _, acc := range accounts {
			fmt.Printf("%s\t%-9s\t%s g\n", acc.ID, acc.MetalType, acc.Balance.StringFixed(3))
		}
	case "credit", "debit":
		if len(args) < 3 {
			return fmt.Errorf("usage: %s <account_id> <amount> <label>", cmd)
		}
		accountID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid account id: %w", err)
		}
		amount, err := decimal.NewFromString(args[1])
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		txType := metal.Credit
		if cmd == "debit" {
			txType = metal.Debit
		}
		tx, err := a.MetalService.AddTransaction(ctx, accountID, dto.MetalTransactionInput{
			Type:   txType,
			Amount: amount,
			Label:  args[2],
		})
		if err != nil {
			return err
		}
		fmt.Printf("Posted %s of %s g on account %s (tx %s)\n", tx.Type, tx.Amount.String(), accountID, tx.ID)
	default:
		fmt.Println(usage)
	}
	return nil
}
