package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/aristath/compound/internal/domain"
	"github.com/aristath/compound/internal/modules/dashboard"
	"github.com/aristath/compound/internal/repository"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch one endpoint and print the decoded payload as JSON",
}

var fetchAdvisorsCmd = &cobra.Command{
	Use:   "advisors",
	Short: "List advisors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sortName, _ := cmd.Flags().GetString("sort")
		option, err := dashboard.ParseSortOption(sortName)
		if err != nil {
			return err
		}

		repo, done, err := fetchRepository()
		if err != nil {
			return err
		}
		defer done()

		advisors, err := repo.FetchAdvisors(cmd.Context())
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), dashboard.SortAdvisors(advisors, option))
	},
}

var fetchAccountsCmd = &cobra.Command{
	Use:   "accounts [advisor-id]",
	Short: "List the accounts of an advisor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, done, err := fetchRepository()
		if err != nil {
			return err
		}
		defer done()

		accounts, err := repo.FetchAccounts(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), accounts)
	},
}

var fetchHoldingsCmd = &cobra.Command{
	Use:   "holdings [account-id]",
	Short: "List the holdings of an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, done, err := fetchRepository()
		if err != nil {
			return err
		}
		defer done()

		holdings, err := repo.FetchHoldings(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), holdings)
	},
}

var fetchTreeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Fetch every advisor with their accounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sortName, _ := cmd.Flags().GetString("sort")
		option, err := dashboard.ParseSortOption(sortName)
		if err != nil {
			return err
		}

		repo, done, err := fetchRepository()
		if err != nil {
			return err
		}
		defer done()

		tree, err := fetchTree(cmd.Context(), repo, option)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), tree)
	},
}

func init() {
	fetchCmd.AddCommand(fetchAdvisorsCmd)
	fetchCmd.AddCommand(fetchAccountsCmd)
	fetchCmd.AddCommand(fetchHoldingsCmd)
	fetchCmd.AddCommand(fetchTreeCmd)
}

// advisorTree is one advisor with its accounts
type advisorTree struct {
	domain.Advisor
	Accounts []domain.Account `json:"accounts"`
}

// fetchTree loads the advisor list in the given order, then every advisor's
// accounts concurrently
func fetchTree(ctx context.Context, repo *repository.Repository, option dashboard.SortOption) ([]advisorTree, error) {
	advisors, err := repo.FetchAdvisors(ctx)
	if err != nil {
		return nil, err
	}
	advisors = dashboard.SortAdvisors(advisors, option)

	tree := make([]advisorTree, len(advisors))

	g, gctx := errgroup.WithContext(ctx)
	for i, advisor := range advisors {
		g.Go(func() error {
			accounts, err := repo.FetchAccounts(gctx, advisor.ID)
			if err != nil {
				return err
			}
			tree[i] = advisorTree{Advisor: advisor, Accounts: accounts}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return tree, nil
}

func fetchRepository() (*repository.Repository, func(), error) {
	log, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	return newRepository(cfg, environment(cfg), log), closeLog, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
