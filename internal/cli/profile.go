package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/avezina/passmith/internal/generate"
	"github.com/avezina/passmith/internal/policy"
	"github.com/avezina/passmith/internal/profile"
)

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileCheckCmd)
	profileCmd.AddCommand(profileShowCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage generation profiles",
	Long:  "List, check, and inspect named generation profiles.",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available profiles",
	RunE:  runProfileList,
}

var profileCheckCmd = &cobra.Command{
	Use:   "check <name>",
	Short: "Validate a profile loads cleanly",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileCheck,
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a profile's effective policy",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

func runProfileList(cmd *cobra.Command, args []string) error {
	names := profile.List()
	if len(names) == 0 {
		fmt.Println("No profiles available.")
		return nil
	}

	fmt.Println("Available profiles:")
	for _, name := range names {
		p, err := profile.Load(name)
		if err != nil {
			fmt.Printf("  %-12s (unreadable: %v)\n", name, err)
			continue
		}
		fmt.Printf("  %-12s %s\n", name, p.Description)
	}
	return nil
}

func runProfileCheck(cmd *cobra.Command, args []string) error {
	name := args[0]
	p, err := profile.Load(name)
	if err != nil {
		return fmt.Errorf("failed to load profile %q: %w", name, err)
	}
	if err := profile.Validate(p); err != nil {
		return err
	}

	pol, err := policy.Validate(p.Policy)
	if err != nil {
		return err
	}

	fmt.Printf("Profile %q is valid.\n", name)
	fmt.Printf("  Length:      %d\n", pol.Length)
	fmt.Printf("  Pool size:   %d characters\n", len(pol.Pool))
	fmt.Printf("  Minimums:    %d of %d positions\n", pol.MinSum(), pol.Length)
	fmt.Printf("  Entropy:     %.0f bits per password\n", generate.Estimate(pol))
	return nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	name := args[0]
	p, err := profile.Load(name)
	if err != nil {
		return fmt.Errorf("failed to load profile %q: %w", name, err)
	}

	out, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
