// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// consent.go - "folio consent" manages the analytics consent decision.
//
// Command: consent [status|accept|revoke]
//
// Analytics are local-only and off until consent is explicitly accepted.
// Revoking both withdraws consent and purges every event already recorded,
// so "revoke" leaves no trace of the analytics that ran under the old
// decision.
//
// Examples:
//   folio consent            Show the current decision
//   folio consent accept     Accept local analytics
//   folio consent revoke     Revoke consent and purge recorded events

package cli

import (
	"context"
	"fmt"
	"os/user"
	"time"

	"github.com/jeranaias/folio-tui/internal/config"
	"github.com/jeranaias/folio-tui/internal/telemetry"
)

// ConsentVersion is the version of the consent prompt text. Bump when the
// prompt's meaning changes so old decisions can be told apart from new ones.
const ConsentVersion = "1"

// HandleConsent implements "folio consent".
func HandleConsent(args Args) error {
	switch args.Subcommand {
	case "", "status":
		return handleConsentStatus(args)
	case "accept":
		return handleConsentAccept(args)
	case "revoke", "decline":
		return handleConsentRevoke(args)
	default:
		return fmt.Errorf("unknown consent subcommand: %s\n\nValid subcommands:\n"+
			"  status  - Show the current decision\n"+
			"  accept  - Accept local analytics\n"+
			"  revoke  - Revoke consent and purge recorded events", args.Subcommand)
	}
}

// handleConsentStatus prints the recorded decision.
func handleConsentStatus(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	state := "undecided"
	if cfg.Consent.Accepted {
		state = "accepted"
	} else if cfg.Consent.Declined {
		state = "declined"
	}

	if args.JSON {
		out := map[string]interface{}{
			"state":   state,
			"enabled": cfg.Analytics.Enabled && cfg.Consent.Accepted,
		}
		if cfg.Consent.Decided() {
			out["decided_at"] = cfg.Consent.DecidedAt.Format(time.RFC3339)
			out["decided_by"] = cfg.Consent.DecidedBy
			out["version"] = cfg.Consent.BannerVersion
		}
		return outputJSON(out)
	}

	fmt.Println()
	switch state {
	case "accepted":
		printField("Consent", okStyle.Render("accepted"))
	case "declined":
		printField("Consent", warnStyle.Render("declined"))
	default:
		printField("Consent", dimStyle.Render("undecided"))
	}
	if cfg.Consent.Decided() {
		printField("Decided", cfg.Consent.DecidedAt.Format(time.RFC3339))
		if cfg.Consent.DecidedBy != "" {
			printField("By", cfg.Consent.DecidedBy)
		}
	}
	if !cfg.Analytics.Enabled {
		fmt.Println()
		fmt.Println("  Analytics are disabled in the config; consent has no effect.")
	}
	fmt.Println()

	return nil
}

// handleConsentAccept records acceptance.
func handleConsentAccept(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	cfg.Consent.Accepted = true
	cfg.Consent.Declined = false
	cfg.Consent.DecidedAt = time.Now()
	cfg.Consent.DecidedBy = currentUsername()
	cfg.Consent.BannerVersion = ConsentVersion

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save consent: %w", err)
	}

	if args.JSON {
		return outputJSON(map[string]interface{}{"state": "accepted"})
	}
	if !args.Quiet {
		fmt.Printf("%s local analytics accepted\n", okStyle.Render("[OK]"))
		fmt.Println("    Events stay on this machine. Revoke anytime with `folio consent revoke`.")
	}
	return nil
}

// handleConsentRevoke withdraws consent and purges recorded events.
func handleConsentRevoke(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	cfg.Consent.Accepted = false
	cfg.Consent.Declined = true
	cfg.Consent.DecidedAt = time.Now()
	cfg.Consent.DecidedBy = currentUsername()
	cfg.Consent.BannerVersion = ConsentVersion

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save consent: %w", err)
	}

	purged, purgeErr := purgeEvents(cfg)

	if args.JSON {
		out := map[string]interface{}{"state": "declined", "purged": purged}
		if purgeErr != nil {
			out["purge_error"] = purgeErr.Error()
		}
		return outputJSON(out)
	}
	if !args.Quiet {
		fmt.Printf("%s consent revoked\n", okStyle.Render("[OK]"))
		if purgeErr != nil {
			fmt.Printf("%s could not purge recorded events: %v\n", warnStyle.Render("[!]"), purgeErr)
		} else if purged {
			fmt.Println("    All recorded events have been purged.")
		}
	}
	return nil
}

// purgeEvents deletes every recorded event. Returns false when there is no
// database to purge.
func purgeEvents(cfg *config.Config) (bool, error) {
	path := cfg.Analytics.DBPath
	if path == "" {
		var err error
		if path, err = telemetry.DefaultDBPath(); err != nil {
			return false, err
		}
	}

	store, err := telemetry.Open(path)
	if err != nil {
		return false, err
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := store.Purge(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// currentUsername returns the OS username, or "unknown".
func currentUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "unknown"
}
