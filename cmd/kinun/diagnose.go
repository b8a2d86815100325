package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/randomtoy/kinun-go/internal/adapters/clipboard"
	"github.com/randomtoy/kinun-go/internal/adapters/qr"
	"github.com/randomtoy/kinun-go/internal/app"
	"github.com/randomtoy/kinun-go/internal/domain"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Diagnose a single birth date",
	Example: `  kinun diagnose --year 1990 --month 1 --day 1
  kinun diagnose --year 2000 --month 5 --day 15 --copy --qr`,
	Args: cobra.NoArgs,
	RunE: runDiagnose,
}

func init() {
	diagnoseCmd.Flags().Int("year", 0, "birth year")
	diagnoseCmd.Flags().Int("month", 0, "birth month (1-12)")
	diagnoseCmd.Flags().Int("day", 0, "birth day (1-31)")
	diagnoseCmd.Flags().Bool("copy", false, "copy the LINE message to the clipboard")
	diagnoseCmd.Flags().Bool("qr", false, "print a QR code for adding the LINE account")
	diagnoseCmd.Flags().Bool("json", false, "print the result as JSON")
	rootCmd.AddCommand(diagnoseCmd)
}

func runDiagnose(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, cmd.ErrOrStderr(), false)

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")
	day, _ := cmd.Flags().GetInt("day")
	if year <= 0 || month <= 0 || day <= 0 {
		return fmt.Errorf("%s: %w", domain.UserMessage(domain.ErrIncompleteDate), domain.ErrIncompleteDate)
	}

	res, err := svc.Diagnose(year, month, day)
	if err != nil {
		if msg := domain.UserMessage(err); msg != "" {
			return fmt.Errorf("%s: %w", msg, err)
		}
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		if err := writeResultJSON(out, res); err != nil {
			return err
		}
	} else {
		writeResultText(out, res)
	}

	if showQR, _ := cmd.Flags().GetBool("qr"); showQR {
		if !cfg.Features.QR {
			return fmt.Errorf("qr: %w", domain.ErrFeatureDisabled)
		}
		text, err := qr.NewEncoder().Text(res.AddFriendURL)
		if err != nil {
			logger.Warn("qr encode failed", "error", err)
			fmt.Fprintf(out, "\nQR: %s\n", svc.Links().QRFallbackURL())
		} else {
			fmt.Fprintf(out, "\n%s", text)
		}
	}

	if doCopy, _ := cmd.Flags().GetBool("copy"); doCopy {
		if !cfg.Features.Clipboard {
			return fmt.Errorf("clipboard: %w", domain.ErrFeatureDisabled)
		}
		cb := clipboard.New(os.Stderr, os.Getenv("TMUX") != "", logger)
		if err := cb.Copy(cmd.Context(), res.Message); err != nil {
			logger.Warn("copy failed", "error", err)
			fmt.Fprintln(cmd.ErrOrStderr(), domain.UserMessage(domain.ErrCopyFailed))
			return nil
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "コピーしました！")
	}
	return nil
}

func writeResultText(w io.Writer, res app.Result) {
	a := res.Diagnosis.Archetype
	fmt.Fprintf(w, "%s %s\n", a.Emblem, res.TypeName)
	fmt.Fprintf(w, "%s\n\n", a.Tagline)
	fmt.Fprintf(w, "金運スタイル: %s\n", a.Style)
	fmt.Fprintf(w, "金運開花のタネ: %s\n\n", a.Tip)
	fmt.Fprintf(w, "--- message ---\n%s\n---------------\n\n", res.Message)
	fmt.Fprintf(w, "LINE message: %s\n", res.MessageURL)
	fmt.Fprintf(w, "LINE add friend: %s\n", res.AddFriendURL)
}

type resultJSON struct {
	Archetype    domain.Archetype `json:"archetype"`
	BirthDate    string           `json:"birth_date"`
	TypeName     string           `json:"type_name"`
	Message      string           `json:"message"`
	MessageURL   string           `json:"message_url"`
	AddFriendURL string           `json:"add_friend_url"`
}

func writeResultJSON(w io.Writer, res app.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(resultJSON{
		Archetype:    res.Diagnosis.Archetype,
		BirthDate:    res.Diagnosis.Date.String(),
		TypeName:     res.TypeName,
		Message:      res.Message,
		MessageURL:   res.MessageURL,
		AddFriendURL: res.AddFriendURL,
	})
}
