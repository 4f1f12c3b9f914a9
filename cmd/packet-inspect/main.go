package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/meshtalk/meshtalk-node/pkg/protocol"
)

var (
	hexPacket = flag.String("hex", "", "Hex-encoded packet bytes")
	filePath  = flag.String("file", "", "Path to a file containing raw packet bytes")
	padded    = flag.Bool("padded", false, "Strip cell padding before inspecting")
	decode    = flag.Bool("decode", false, "Fully decode the packet and print the content")
)

func main() {
	flag.Parse()

	buf, err := readPacket()
	if err != nil {
		log.Fatalf("Failed to read packet: %v", err)
	}

	if *padded {
		buf, err = protocol.UnpadPacket(buf)
		if err != nil {
			log.Fatalf("Failed to strip padding: %v", err)
		}
	}

	header, err := protocol.InspectPacket(buf)
	if err != nil {
		log.Fatalf("Failed to inspect packet: %v", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Field", "Value"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	table.Append([]string{"Magic", fmt.Sprintf("0x%04X", header.Magic)})
	table.Append([]string{"Version", fmt.Sprintf("%d", header.Version)})
	table.Append([]string{"Type", header.Type.String()})
	table.Append([]string{"TTL", fmt.Sprintf("%d", header.TTL)})
	table.Append([]string{"Payload length", fmt.Sprintf("%d bytes", header.PayloadLen)})
	table.Append([]string{"Timestamp", fmt.Sprintf("%d", header.Timestamp)})
	table.Append([]string{"Reserved", fmt.Sprintf("%d", header.Reserved)})
	table.Append([]string{"Structurally valid", fmt.Sprintf("%t", protocol.ValidatePacket(buf))})
	table.Render()

	if *decode {
		msg, err := protocol.DecodePacket(buf)
		if err != nil {
			log.Fatalf("Failed to decode packet: %v", err)
		}
		fmt.Printf("\nContent: %s\n", msg.Content)
	}
}

func readPacket() ([]byte, error) {
	if *hexPacket != "" {
		return hex.DecodeString(strings.TrimSpace(*hexPacket))
	}

	if *filePath != "" {
		return os.ReadFile(*filePath)
	}

	return nil, fmt.Errorf("either -hex or -file is required")
}
