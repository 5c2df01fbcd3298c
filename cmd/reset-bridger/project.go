package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"reset-bridger/internal/common"
	"reset-bridger/internal/description"
	"reset-bridger/internal/diagnostic"
	"reset-bridger/internal/driver"
	"reset-bridger/internal/model"
	"reset-bridger/internal/render"
)

func newImportCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Project a source-convention description into the target convention",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjection(cmd, opts, args[0], model.ConventionSource)
		},
	}
}

func newExportCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Project a target-convention description into the source convention",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjection(cmd, opts, args[0], model.ConventionTarget)
		},
	}
}

func newCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Project a description in its natural direction and report diagnostics only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}

			classes, err := readClasses(cmd, args[0])
			if err != nil {
				return err
			}

			rep, err := project(cmd.Context(), s, classes)
			if err != nil {
				return err
			}

			if err := writeResult(cmd, opts, func(w io.Writer) error {
				return render.Diagnostics(w, rep.Diagnostics, s.renderOptions())
			}); err != nil {
				return err
			}

			// check always fails on errors; --strict only matters elsewhere.
			return applyPolicy(rep.Diagnostics, true, s.cfg.WarningsAsErrors)
		},
	}
}

func newRoundtripCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip <file>",
		Short: "Project a description there and back and report classes that change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}

			classes, err := readClasses(cmd, args[0])
			if err != nil {
				return err
			}

			there, err := project(cmd.Context(), s, classes)
			if err != nil {
				return err
			}

			back, err := project(cmd.Context(), s, there.Classes())
			if err != nil {
				return err
			}

			var diffs []string

			for i, r := range back.Results {
				in := there.Results[i].Input
				if !model.Equivalent(in, r.Result.Class) {
					diffs = append(diffs, in.Name)
				}
			}

			var diags diagnostic.Diagnostics
			diags.Merge(there.Diagnostics)
			diags.Merge(back.Diagnostics)

			if err := writeResult(cmd, opts, func(w io.Writer) error {
				if err := render.Diagnostics(w, diags, s.renderOptions()); err != nil {
					return err
				}

				if _, err := fmt.Fprintf(w, "roundtrip: %d classes, %d changed\n", len(back.Results), len(diffs)); err != nil {
					return err
				}

				for _, name := range diffs {
					if _, err := fmt.Fprintf(w, "  changed: %s\n", name); err != nil {
						return err
					}
				}

				return nil
			}); err != nil {
				return err
			}

			if len(diffs) > 0 {
				return fmt.Errorf("%w: %d classes changed after a round trip", errDiagnostics, len(diffs))
			}

			return applyPolicy(diags, s.cfg.Strict, s.cfg.WarningsAsErrors)
		},
	}
}

func runProjection(cmd *cobra.Command, opts *globalOptions, path string, want model.Convention) error {
	s, err := opts.load(cmd)
	if err != nil {
		return err
	}

	classes, err := readClasses(cmd, path)
	if err != nil {
		return err
	}

	if first, ok := common.First(classes); ok && first.Convention != want {
		return fmt.Errorf("%s: %w", path, model.Malformed("",
			"%s expects a %s-convention description, got %s", cmd.Name(), want, first.Convention))
	}

	rep, err := project(cmd.Context(), s, classes)
	if err != nil {
		return err
	}

	classesOut := rep.Classes()

	if err := writeResult(cmd, opts, func(w io.Writer) error {
		if len(classesOut) == 0 {
			return render.Diagnostics(w, rep.Diagnostics, s.renderOptions())
		}

		return render.Classes(w, classesOut, rep.Diagnostics, s.renderOptions())
	}); err != nil {
		return err
	}

	return applyPolicy(rep.Diagnostics, s.cfg.Strict, s.cfg.WarningsAsErrors)
}

func readClasses(cmd *cobra.Command, path string) ([]*model.ClassInterface, error) {
	if path != "-" {
		return description.Load(path)
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	f, err := description.Parse(data)
	if err != nil {
		return nil, err
	}

	return description.Build(f)
}

func project(ctx context.Context, s *settings, classes []*model.ClassInterface) (*driver.Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	opts, err := s.driverOptions()
	if err != nil {
		return nil, err
	}

	rep, err := driver.Run(ctx, classes, opts)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("projection finished",
		"classes", len(rep.Results),
		"skipped", rep.Skipped,
		"diagnostics", rep.Diagnostics.Len())

	return rep, nil
}

func writeResult(cmd *cobra.Command, opts *globalOptions, write func(io.Writer) error) error {
	w, closeFn, err := opts.openOutput(cmd)
	if err != nil {
		return err
	}

	return errors.Join(write(w), closeFn())
}

// applyPolicy turns diagnostics into a command failure. failOnErrors makes
// error diagnostics fatal; failOnWarnings makes any diagnostic fatal.
func applyPolicy(diags diagnostic.Diagnostics, failOnErrors, failOnWarnings bool) error {
	var err error

	switch {
	case failOnWarnings:
		err = diags.StrictError()
	case failOnErrors:
		err = diags.Error()
	}

	if err != nil {
		return fmt.Errorf("%w: %w", errDiagnostics, err)
	}

	return nil
}
