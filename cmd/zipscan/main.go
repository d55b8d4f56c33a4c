// Command zipscan dumps the structural contents of a ZIP archive without
// decompressing or verifying it.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/archiveforensics/zipscan"
)

var (
	verbose         bool
	consumePreamble bool
)

func buildRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zipscan <archive>",
		Short: "Forensically dump the structure of a ZIP archive",
		Long: `zipscan parses a ZIP archive as a sequence of stored files followed by an
optional central directory, without decompressing payloads, verifying
CRC-32s, or handling encryption.

It recovers from damaged or truncated regions by resynchronizing on the
next recognizable record signature, and reports any stored file that the
central directory does not account for.`,
		Args: cobra.ExactArgs(1),
		RunE: runDump,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "lower the stderr log level from warn to debug")
	cmd.Flags().BoolVar(&consumePreamble, "consume-descriptor-preamble", false, "opportunistically consume the optional data descriptor signature")

	return cmd
}

func runDump(cmd *cobra.Command, args []string) error {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	opts := zipscan.ParseOptions{
		ConsumeDataDescriptorPreamble: consumePreamble,
		Logger:                        logger,
	}

	zf, err := zipscan.ParseFile(afero.NewOsFs(), args[0], opts)
	if err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	dumpZipFile(cmd.OutOrStdout(), zf)
	return nil
}

func dumpZipFile(w io.Writer, zf *zipscan.ZipFile) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "STORED FILES (%d)\n", len(zf.StoredFiles))
	fmt.Fprintln(tw, "pos\toffset\tmethod\tcompressed\tuncompressed\tname\tin central dir\tcd delta")
	for _, sf := range zf.StoredFiles {
		delta := "-"
		if sf.OffsetFromCentralDirectory != nil {
			delta = fmt.Sprintf("%d", *sf.OffsetFromCentralDirectory)
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%d\t%s\t%t\t%s\n",
			sf.Position,
			sf.OffsetInArchive,
			sf.LocalFileHeader.CompressionMethod,
			sf.LocalFileHeader.CompressedSize,
			sf.LocalFileHeader.UncompressedSize,
			sf.LocalFileHeader.Filename,
			sf.FoundInCentralDirectory,
			delta,
		)
	}
	tw.Flush()

	if zf.ArchiveExtraDataRecord != nil {
		fmt.Fprintf(w, "\nARCHIVE EXTRA DATA RECORD: %d bytes\n", len(zf.ArchiveExtraDataRecord.ExtraField))
	}

	if zf.CentralDirectory == nil {
		fmt.Fprintln(w, "\nCENTRAL DIRECTORY: absent")
	} else {
		cd := zf.CentralDirectory
		fmt.Fprintf(w, "\nCENTRAL DIRECTORY at offset %d (%d entries)\n", cd.OffsetFromStartOfArchive, len(cd.FileHeaders))
		fmt.Fprintln(tw, "pos\tlocal header offset\tcompressed\tuncompressed\tname")
		for _, h := range cd.FileHeaders {
			fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\n", h.Position, h.LocalFileHeaderOffset, h.CompressedSize, h.UncompressedSize, h.Filename)
		}
		tw.Flush()
		if cd.DigitalSignature != nil {
			fmt.Fprintf(w, "digital signature: %d bytes\n", len(cd.DigitalSignature.SignatureData))
		}
		eocd := cd.EndOfCentralDirectory
		fmt.Fprintf(w, "end of central directory: %d/%d records, comment %q\n",
			eocd.RecordsOnThisDisk, eocd.RecordsTotal, eocd.Comment)
	}

	if len(zf.Warnings) > 0 {
		fmt.Fprintf(w, "\nWARNINGS (%d)\n", len(zf.Warnings))
		for _, warning := range zf.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
}

func main() {
	if err := buildRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
