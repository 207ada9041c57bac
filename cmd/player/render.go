package main

import (
	"fmt"
	"io"
	"note-relay/domain"
	"note-relay/repositories"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func newTable(out io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

// renderParticipants prints the local participant first, then the others.
func renderParticipants(out io.Writer, self domain.ParticipantID, selfName string,
	others []domain.ParticipantID, nameOf func(domain.ParticipantID) string) {
	table := newTable(out, []string{"Participant", "Name", "You"})
	table.Append([]string{self.String(), selfName, "yes"})
	for _, id := range others {
		table.Append([]string{id.String(), nameOf(id), ""})
	}
	table.Render()
}

func renderRoster(out io.Writer, instruments []domain.Instrument) {
	table := newTable(out, []string{"Instrument", "Owner", "Local", "Since"})
	table.AppendBulk(lo.Map(instruments, func(i domain.Instrument, _ int) []string {
		return []string{i.Name, i.Owner.String(), strconv.FormatBool(i.Local), i.CreatedAt.Format("15:04:05")}
	}))
	table.Render()
	_, _ = fmt.Fprintf(out, "%d instruments, %d owners\n", len(instruments), len(repositories.Owners(instruments)))
}
