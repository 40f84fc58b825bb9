// ABOUTME: CLI commands for subscriptions: add, list with cost totals, cancel and stats.
// ABOUTME: Totals count only active subscriptions and are rounded for display.
package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/aggregate"
	"github.com/harperreed/lifedash/internal/dashboard"
	"github.com/harperreed/lifedash/internal/models"
	"github.com/harperreed/lifedash/internal/storage"
)

var (
	subCycle      string
	subCategory   string
	subMyPrice    float64
	subSharedWith string
	subNext       string
	subNotes      string
	subAll        bool
)

var subCmd = &cobra.Command{
	Use:     "sub",
	Aliases: []string{"subs", "subscription"},
	Short:   "Track subscription costs",
}

var subAddCmd = &cobra.Command{
	Use:   "add <name> <price>",
	Short: "Add a subscription",
	Long: `Add a subscription.

CYCLES: weekly, monthly (default), yearly, lifetime
CATEGORIES: entertainment, productivity, health, finance, education, cloud, ai, other

EXAMPLES:

  lifedash sub add Netflix 15.99 --category entertainment
  lifedash sub add Spotify 16.99 --my-price 5.66 --shared-with "family"
  lifedash sub add Domain 12 --cycle yearly --next 2026-03-01`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil || price < 0 {
			return fmt.Errorf("invalid price: %s", args[1])
		}

		s := models.NewSubscription(args[0], price)
		if subCycle != "" {
			cycle, err := models.ParseBillingCycle(subCycle)
			if err != nil {
				return err
			}
			s.WithCycle(cycle)
		}
		if subCategory != "" {
			cat, err := models.ParseSubscriptionCategory(subCategory)
			if err != nil {
				return err
			}
			s.WithCategory(cat)
		}
		if cmd.Flags().Changed("my-price") {
			if subMyPrice < 0 {
				return fmt.Errorf("invalid my-price: %v", subMyPrice)
			}
			s.WithMyPrice(subMyPrice)
		}
		if subSharedWith != "" {
			s.SharedWith = &subSharedWith
			s.IsShared = true
		}
		if subNext != "" {
			next, err := models.ParseDate(subNext)
			if err != nil {
				return err
			}
			s.NextBilling = &next
		}
		s.Notes = optionalFlag(subNotes)

		if err := db.CreateSubscription(cmd.Context(), s); err != nil {
			return fmt.Errorf("failed to add subscription: %w", err)
		}
		color.Green("✓ Added %s (#%d) at %s/%s", s.Name, s.ID, money(s.EffectivePrice()), s.BillingCycle)
		return nil
	},
}

var subListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active subscriptions with monthly and yearly totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := storage.SubscriptionFilter{ActiveOnly: !subAll}
		if subCategory != "" {
			cat, err := models.ParseSubscriptionCategory(subCategory)
			if err != nil {
				return err
			}
			filter.Category = &cat
		}

		list, err := dashboard.ListSubscriptions(cmd.Context(), db, filter)
		if err != nil {
			return fmt.Errorf("failed to list subscriptions: %w", err)
		}
		if len(list.Subscriptions) == 0 {
			fmt.Println("No subscriptions.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, v := range list.Subscriptions {
			name := v.Name
			if !v.Active {
				name = faint.Sprintf("%s (cancelled)", v.Name)
			}
			shared := ""
			if v.IsShared {
				shared = faint.Sprint(" shared")
			}
			fmt.Printf("%s %s %s %s%s\n",
				faint.Sprint(padRight(fmt.Sprintf("#%d", v.ID), 6)),
				padRight(truncate(name, 24), 24),
				padRight(fmt.Sprintf("%s/%s", money(v.EffectivePrice), v.BillingCycle), 18),
				faint.Sprint(v.Category),
				shared,
			)
		}
		fmt.Println()
		printTotals(list.Totals)
		return nil
	},
}

var subCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Mark a subscription inactive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}
		if err := db.DeactivateSubscription(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to cancel subscription: %w", err)
		}
		color.Green("✓ Cancelled subscription #%d", id)
		return nil
	},
}

var subStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Break active subscriptions down by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		breakdown, err := dashboard.SubscriptionStats(cmd.Context(), db)
		if err != nil {
			return err
		}
		if breakdown.TotalSubscriptions == 0 {
			fmt.Println("No active subscriptions.")
			return nil
		}

		cats := make([]models.SubscriptionCategory, 0, len(breakdown.ByCategory))
		for c := range breakdown.ByCategory {
			cats = append(cats, c)
		}
		sort.Slice(cats, func(i, j int) bool {
			return breakdown.ByCategory[cats[i]].Monthly > breakdown.ByCategory[cats[j]].Monthly
		})
		for _, c := range cats {
			t := breakdown.ByCategory[c]
			fmt.Printf("%s %s %s\n", padRight(string(c), 15), padRight(fmt.Sprintf("%d", t.Count), 4), money(t.Monthly)+"/month")
		}
		fmt.Println()
		color.New(color.Bold).Printf("%d active subscriptions\n", breakdown.TotalSubscriptions)
		return nil
	},
}

func printTotals(t aggregate.CostTotals) {
	bold := color.New(color.Bold)
	bold.Printf("%s/month  %s/year", money(t.Monthly), money(t.Yearly))
	fmt.Printf("  (%d active)\n", t.Count)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", aggregate.Round2(v))
}

func init() {
	subAddCmd.Flags().StringVar(&subCycle, "cycle", "", "billing cycle (default monthly)")
	subAddCmd.Flags().StringVarP(&subCategory, "category", "c", "", "category (default other)")
	subAddCmd.Flags().Float64Var(&subMyPrice, "my-price", 0, "your share of a shared subscription")
	subAddCmd.Flags().StringVar(&subSharedWith, "shared-with", "", "who the subscription is shared with")
	subAddCmd.Flags().StringVar(&subNext, "next", "", "next billing date (YYYY-MM-DD)")
	subAddCmd.Flags().StringVar(&subNotes, "notes", "", "notes")

	subListCmd.Flags().BoolVarP(&subAll, "all", "a", false, "include cancelled subscriptions")
	subListCmd.Flags().StringVarP(&subCategory, "category", "c", "", "only this category")

	subCmd.AddCommand(subAddCmd, subListCmd, subCancelCmd, subStatsCmd)
	rootCmd.AddCommand(subCmd)
}
