package cli

import (
	"fmt"
	"io"
	"time"

	pb "github.com/dmitrijs2005/sealvault/internal/proto"
	"github.com/dustin/go-humanize"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var jsonOptions = protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true}

func writeJSON(w io.Writer, m proto.Message) error {
	b, err := jsonOptions.Marshal(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func writeSealResult(w io.Writer, resp *pb.SealResponse) error {
	if _, err := fmt.Fprintf(w, "id:         %s\n", resp.GetId()); err != nil {
		return err
	}
	if resp.AccessKey == "" {
		_, err := fmt.Fprintln(w, "protection: passphrase")
		return err
	}
	_, err := fmt.Fprintf(w, "access key: %s\n", resp.AccessKey)
	return err
}

func writeInfo(w io.Writer, info *pb.PeekInfoResponse, now time.Time) error {
	protection := "access key"
	if info.RequiresPassphrase {
		protection = "passphrase"
	}

	downloads := fmt.Sprintf("%d", info.DownloadCount)
	if info.QuotaRemaining != nil {
		downloads = fmt.Sprintf("%d (%d left)", info.DownloadCount, info.GetQuotaRemaining())
	}

	expires := "never"
	if info.ExpiresAt != nil {
		at := info.ExpiresAt.AsTime().Local()
		expires = fmt.Sprintf("%s (%s)", at.Format(time.RFC3339), humanize.RelTime(at, now, "ago", "from now"))
	}

	name := info.FileName
	if name == "" {
		name = "-"
	}

	_, err := fmt.Fprintf(w,
		"id:         %s\nstatus:     %s\nprotection: %s\nfile:       %s\nsize:       %s\ndownloads:  %s\ncreated:    %s\nexpires:    %s\n",
		info.GetId(), info.Liveness, protection, name, humanize.IBytes(uint64(info.Size)),
		downloads, info.GetCreatedAt().AsTime().Local().Format(time.RFC3339), expires)
	return err
}
