package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/gsxws/internal/config"
	"github.com/danmuck/gsxws/internal/gsx"
	"github.com/danmuck/gsxws/internal/identifier"
	"github.com/danmuck/gsxws/internal/reference"
	"github.com/spf13/cobra"
)

var errCredentialsRequired = errors.New("gsxctl: USER_ID PASSWORD SOLD_TO required without a comptia_book")

func newClassifyCmd() *cobra.Command {
	var expect string
	cmd := &cobra.Command{
		Use:   "classify VALUE",
		Short: "Print the identifier kind of VALUE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if expect != "" {
				kind, err := identifier.ParseKind(expect)
				if err != nil {
					return err
				}
				ok, err := identifier.Validate(args[0], kind)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ok)
				return nil
			}
			kind, ok := identifier.Classify(args[0])
			if !ok {
				return fmt.Errorf("%w: %q matches no identifier kind", identifier.ErrInvalidInput, args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), kind)
			return nil
		},
	}
	cmd.Flags().StringVar(&expect, "expect", "", "validate VALUE against this kind instead")
	return cmd
}

func newInitConfigCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init-config PATH",
		Short: "Write an example config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteTemplate(args[0], force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newCompTIACmd(opts *rootOptions) *cobra.Command {
	var component string
	cmd := &cobra.Command{
		Use:   "comptia [USER_ID PASSWORD SOLD_TO]",
		Short: "Print CompTIA symptom and modifier codes",
		Long: `comptia prints the code book named by comptia_book in the config file.
Without one it opens a session and fetches the live code book.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 3 {
				return fmt.Errorf("accepts 0 or 3 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var userID, soldTo string
			if len(args) == 3 {
				userID, soldTo = args[0], args[2]
			}
			cfg, err := opts.resolve(cmd, userID, soldTo)
			if err != nil {
				return err
			}
			book, err := cfg.CodeBook()
			if err != nil {
				return err
			}
			if book != nil {
				return printCodeBook(cmd.OutOrStdout(), book, component)
			}
			if len(args) != 3 {
				return errCredentialsRequired
			}
			stop, err := opts.serveMetrics(cmd)
			if err != nil {
				return err
			}
			defer stop()
			return withSession(cmd, cfg, args[1], func(ctx context.Context, client *gsx.Client) error {
				live, err := client.CompTIACodes(ctx)
				if err != nil {
					return err
				}
				return printCodeBook(cmd.OutOrStdout(), live, component)
			})
		},
	}
	cmd.Flags().StringVar(&component, "component", "", "print only the symptom codes of this component group")
	return cmd
}

// printCodeBook writes one tab separated row per code. A component filter
// prints code and description only.
func printCodeBook(w io.Writer, book *reference.CodeBook, component string) error {
	if component != "" {
		codes, err := book.SymptomCodes(component)
		if err != nil {
			return err
		}
		for _, c := range codes {
			fmt.Fprintf(w, "%s\t%s\n", c.Code, c.Description)
		}
		return nil
	}
	for _, group := range book.Components() {
		codes, _ := book.SymptomCodes(group)
		for _, c := range codes {
			fmt.Fprintf(w, "%s\t%s\t%s\n", group, c.Code, c.Description)
		}
	}
	for _, c := range book.ModifierCodes() {
		fmt.Fprintf(w, "modifier\t%s\t%s\n", c.Code, c.Description)
	}
	return nil
}
