// package formatter provides functions to export album listings to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/soundctl/mak/internal/models"
	"github.com/soundctl/mak/internal/shared"
)

// ExportToCSV converts an album listing to CSV with columns: Track, Title, Artist, Album, Format, Size
func ExportToCSV(album *models.Album) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Track", "Title", "Artist", "Album", "Format", "Size"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range album.Tracks {
		record := []string{
			shared.FormatTrackNumber(track.TrackNumber, track.TrackTotal),
			track.Title,
			track.Artist,
			track.Album,
			track.Format,
			strconv.FormatInt(track.Size, 10),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts an album listing to Markdown with an optional cover image reference
func ExportToMarkdown(album *models.Album, imageFilename string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", album.Name()))

	if imageFilename != "" {
		buf.WriteString(fmt.Sprintf("![Cover](%s)\n\n", imageFilename))
	}

	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n\n", len(album.Tracks)))

	buf.WriteString("## Tracks\n\n")
	for i, track := range album.Tracks {
		formatPart := fmt.Sprintf(" [%s]", track.Encoding)
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s\n", i+1, track.Artist, track.Title, formatPart))
	}

	return buf.Bytes(), nil
}

// ExportToText converts an album listing to plain text format
func ExportToText(album *models.Album) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Album: %s\n", album.Name()))
	buf.WriteString(fmt.Sprintf("Tracks: %d\n\n", len(album.Tracks)))

	for i, track := range album.Tracks {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, track.Artist, track.Title))
	}

	return buf.Bytes(), nil
}

// RenderTrackTable renders an album listing as a rounded terminal table.
func RenderTrackTable(album *models.Album) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Title", "Artist", "Album", "Codec", "Art", "Size"})

	for _, track := range album.Tracks {
		art := ""
		if track.HasArtwork {
			art = "✓"
		}
		tw.AppendRow(table.Row{
			shared.FormatTrackNumber(track.TrackNumber, track.TrackTotal),
			track.Title,
			track.Artist,
			track.Album,
			track.Encoding,
			art,
			shared.FormatSize(track.Size),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 7, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// RenderHealthTable renders per-track health as a rounded terminal table.
func RenderHealthTable(health models.AlbumHealth, order []string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Track", "Status", "Issues"})

	for _, name := range order {
		th, ok := health.Tracks[name]
		if !ok {
			continue
		}
		issues := ""
		for i, issue := range th.Issues {
			if i > 0 {
				issues += ", "
			}
			issues += issue
		}
		tw.AppendRow(table.Row{name, string(th.Status), issues})
	}

	return tw.Render()
}
