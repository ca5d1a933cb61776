package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ctestwin/internal/catalog"
	"ctestwin/internal/contestmeta"
	"ctestwin/internal/fileutil"
	"ctestwin/internal/history"
	"ctestwin/internal/lg8"
	"ctestwin/internal/logging"
)

func newCreateCommand(ctx *commandContext) *cobra.Command {
	var (
		bandFlag     string
		modeFlag     string
		contestFlag  string
		kindFlag     uint16
		keyFlag      string
		yearFlag     string
		mdFlag       string
		outDirFlag   string
		outputFlag   string
		clubFlags    []string
		clubFileFlag string
		pointsFlag   uint16
		is001Flag    bool
		dupeFlag     uint16
		twiceFlag    bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an empty .lg8 log container",
		Long: `Create an empty .lg8 log container from the configured settings.

The contest identity is resolved in three layers: the contest table entry
selected with --contest, metadata extracted from the --md document, and the
explicit --kind/--key flags, each layer overriding the previous one field by
field. An identity that still has no kind falls back to the user-defined
multi kind (14).

Examples:
  ctestwin create --contest "All JA" --band 7MHz --mode SSB
  ctestwin create --md tohoku.md --band 3.5MHz --mode CW
  ctestwin create --kind 30 --key myclub --band 430MHz --mode FM`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger := ctx.logger(cfg)

			bandLabel := firstNonEmpty(bandFlag, cfg.Defaults.Band)
			band, ok := catalog.BandByLabel(bandLabel)
			if !ok {
				return fmt.Errorf("unknown band %q (see 'ctestwin bands')", bandLabel)
			}
			modeLabel := firstNonEmpty(modeFlag, cfg.Defaults.Mode)
			mode, ok := catalog.ModeByLabel(modeLabel)
			if !ok {
				return fmt.Errorf("unknown mode %q (see 'ctestwin modes')", modeLabel)
			}

			base, err := contestBase(firstNonEmpty(contestFlag, cfg.Defaults.Contest))
			if err != nil {
				return err
			}
			extracted := contestmeta.ExtractFile(mdFlag)
			manual := contestmeta.Metadata{Key: strings.TrimSpace(keyFlag)}
			if cmd.Flags().Changed("kind") {
				manual.Kind = kindFlag
				manual.KindSet = true
			}
			identity := contestmeta.Resolve(base, extracted, manual)

			year := strings.TrimSpace(yearFlag)
			if year == "" {
				year = strconv.Itoa(time.Now().Year())
			}

			clubs, err := clubRoster(clubFlags, firstNonEmpty(clubFileFlag, cfg.Paths.ClubRoster))
			if err != nil {
				return err
			}

			inputs := lg8.Inputs{
				Band:          band,
				Mode:          mode,
				ContestKind:   identity.Kind,
				Is001Style:    is001Flag,
				DupePolicy:    dupeFlag,
				TwiceMinusOne: twiceFlag,
				ClubOps:       clubs,
				MultiPath:     mdFlag,
			}
			if pointsFlag != 0 {
				inputs.PointPhone = uniformPoints(pointsFlag)
				inputs.PointCW = uniformPoints(pointsFlag)
			}

			data, err := lg8.Encode(inputs)
			if err != nil {
				return fmt.Errorf("encode container: %w", err)
			}

			outPath := strings.TrimSpace(outputFlag)
			if outPath == "" {
				dir := firstNonEmpty(outDirFlag, cfg.Paths.OutputDir)
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output directory %q: %w", dir, err)
				}
				outPath = filepath.Join(dir, lg8.FileName(year, identity.Key, band.Label))
			}

			if err := fileutil.WriteFileLocked(outPath, data); err != nil {
				return fmt.Errorf("write container: %w", err)
			}

			logger.Info("container created",
				logging.String("path", outPath),
				logging.String("band", band.Label),
				logging.String("mode", mode.Label),
				logging.String("contest_key", identity.Key),
				logging.Uint16("contest_kind", identity.Kind),
				logging.Int("club_ops", len(clubs)),
			)

			recordHistory(cmd.Context(), ctx, outPath, identity, band, mode, logger)

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", outPath)
			fmt.Fprintf(cmd.OutOrStdout(), "  Band: %s  Mode: %s  Contest: %s (kind %d)\n",
				band.Label, mode.Label, identity.Key, identity.Kind)
			return nil
		},
	}

	cmd.Flags().StringVar(&bandFlag, "band", "", "Band label (default from config)")
	cmd.Flags().StringVar(&modeFlag, "mode", "", "Mode label (default from config)")
	cmd.Flags().StringVar(&contestFlag, "contest", "", "Contest table entry, e.g. \"All JA\"")
	cmd.Flags().Uint16Var(&kindFlag, "kind", 0, "Explicit contest kind number")
	cmd.Flags().StringVar(&keyFlag, "key", "", "Explicit contest key for the file name")
	cmd.Flags().StringVar(&yearFlag, "year", "", "Contest year for the file name (default: current year)")
	cmd.Flags().StringVar(&mdFlag, "md", "", "User-defined contest .md to extract metadata from")
	cmd.Flags().StringVar(&outDirFlag, "out", "", "Output directory (default from config)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Explicit output file path (overrides --out and naming)")
	cmd.Flags().StringArrayVar(&clubFlags, "club", nil, "Club operator name (repeatable, at most 30 used)")
	cmd.Flags().StringVar(&clubFileFlag, "club-file", "", "File with one club operator name per line")
	cmd.Flags().Uint16Var(&pointsFlag, "points", 0, "Fill both point tables with this value for every band")
	cmd.Flags().BoolVar(&is001Flag, "is001", false, "Use 001-style serial numbering")
	cmd.Flags().Uint16Var(&dupeFlag, "dupe-policy", 0, "Dupe check policy value")
	cmd.Flags().BoolVar(&twiceFlag, "twice-minus-one", false, "Set the twice-minus-one scoring flag")

	return cmd
}

// contestBase resolves the --contest selection into base metadata.
func contestBase(name string) (contestmeta.Metadata, error) {
	if name == "" {
		return contestmeta.Metadata{}, nil
	}
	contest, ok := catalog.ContestByName(name)
	if !ok {
		return contestmeta.Metadata{}, fmt.Errorf("unknown contest %q (see 'ctestwin contests')", name)
	}
	meta := contestmeta.Metadata{Key: contest.Key, Name: contest.Name}
	if contest.KindKnown {
		meta.Kind = contest.Kind
		meta.KindSet = true
	}
	return meta, nil
}

func clubRoster(flags []string, path string) ([]string, error) {
	clubs := make([]string, 0, len(flags))
	for _, name := range flags {
		if name = strings.TrimSpace(name); name != "" {
			clubs = append(clubs, name)
		}
	}
	if len(clubs) > 0 || path == "" {
		return clubs, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read club roster %q: %w", path, err)
	}
	for _, line := range strings.Split(string(raw), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			clubs = append(clubs, line)
		}
	}
	return clubs, nil
}

func uniformPoints(value uint16) []uint16 {
	points := make([]uint16, lg8.BandCount())
	for i := range points {
		points[i] = value
	}
	return points
}

func recordHistory(ctx context.Context, cmdCtx *commandContext, path string, identity contestmeta.Identity, band catalog.Band, mode catalog.Mode, logger *slog.Logger) {
	cfg := cmdCtx.cfg
	if cfg == nil || strings.TrimSpace(cfg.Paths.HistoryDB) == "" {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := history.Open(ctx, cfg.Paths.HistoryDB)
	if err != nil {
		logger.Warn("history unavailable", logging.Error(err))
		return
	}
	defer store.Close()

	entry := &history.Entry{
		Path:        path,
		ContestKey:  identity.Key,
		ContestKind: identity.Kind,
		Band:        band.Label,
		Mode:        mode.Label,
	}
	if err := store.Record(ctx, entry); err != nil {
		logger.Warn("history record failed", logging.Error(err))
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
