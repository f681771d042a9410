package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typefall/internal/progression"
	"github.com/vovakirdan/typefall/internal/storage"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage player profiles",
	Long: `List, create, switch, and delete player profiles.

Each profile accumulates its own stats, level, and achievements.
At most 10 profiles can coexist; the last one cannot be deleted.

Examples:
  typefall profiles
  typefall profiles create Ada
  typefall profiles use Ada
  typefall profiles delete Ada`,
}

var profilesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a profile and make it active",
	Args:  cobra.ExactArgs(1),
	Run:   runProfilesCreate,
}

var profilesUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Switch the active profile",
	Args:  cobra.ExactArgs(1),
	Run:   runProfilesUse,
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	Run:   runProfilesDelete,
}

func init() {
	profilesCmd.AddCommand(profilesCreateCmd)
	profilesCmd.AddCommand(profilesUseCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)
	profilesCmd.Run = runProfilesList
}

// openManager loads the persisted profiles. The caller must Close the
// returned store and save through it after mutations.
func openManager() (*storage.Store, *progression.Manager) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening game database: %v\n", err)
		os.Exit(1)
	}
	saved, activeID := store.LoadProfiles()
	return store, progression.NewManagerFrom(saved, activeID)
}

func saveManager(store *storage.Store, m *progression.Manager) {
	if err := store.SaveProfiles(m.Profiles(), m.ActiveID()); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error saving profiles: %v\n", err)
		os.Exit(1)
	}
}

func findProfile(m *progression.Manager, name string) *progression.UserProfile {
	for _, p := range m.Profiles() {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func runProfilesList(cmd *cobra.Command, args []string) {
	store, m := openManager()
	defer store.Close()

	fmt.Printf("  %-2s %-16s %-6s %-8s %-10s %s\n", "", "Name", "Level", "Games", "Score", "Achievements")
	for _, p := range m.Profiles() {
		active := " "
		if p.ID == m.ActiveID() {
			active = "*"
		}
		fmt.Printf("  %-2s %-16s %-6d %-8d %-10d %d/%d\n",
			active, p.Name, p.Level, p.Stats.GamesPlayed, p.Stats.TotalScore,
			len(p.Achievements), len(progression.Achievements))
	}
}

func runProfilesCreate(cmd *cobra.Command, args []string) {
	name := args[0]
	store, m := openManager()
	defer store.Close()

	if findProfile(m, name) != nil {
		fmt.Fprintf(os.Stderr, "Error: profile %q already exists\n", name)
		os.Exit(1)
	}
	p := m.Create(name)
	if p == nil {
		fmt.Fprintf(os.Stderr, "Error: profile limit reached (%d)\n", progression.MaxProfiles)
		os.Exit(1)
	}
	saveManager(store, m)
	fmt.Printf("Created profile %q (now active)\n", p.Name)
}

func runProfilesUse(cmd *cobra.Command, args []string) {
	name := args[0]
	store, m := openManager()
	defer store.Close()

	p := findProfile(m, name)
	if p == nil {
		fmt.Fprintf(os.Stderr, "Error: no profile named %q\n", name)
		os.Exit(1)
	}
	m.SetActive(p.ID)
	saveManager(store, m)
	fmt.Printf("Active profile: %s\n", p.Name)
}

func runProfilesDelete(cmd *cobra.Command, args []string) {
	name := args[0]
	store, m := openManager()
	defer store.Close()

	p := findProfile(m, name)
	if p == nil {
		fmt.Fprintf(os.Stderr, "Error: no profile named %q\n", name)
		os.Exit(1)
	}
	if len(m.Profiles()) == 1 {
		fmt.Fprintln(os.Stderr, "Error: cannot delete the last profile")
		os.Exit(1)
	}
	m.Delete(p.ID)
	saveManager(store, m)
	fmt.Printf("Deleted profile %q\n", name)
}
