// internal/wifi/nmcli.go
package wifi

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// NMCLIRadio drives the host's NetworkManager through the nmcli
// binary. The transport timeout is nmcli's own.
type NMCLIRadio struct{}

func (NMCLIRadio) Connect(ctx context.Context, ssid, password string) error {
	cmd := exec.CommandContext(ctx, "nmcli", "device", "wifi", "connect", ssid, "password", password)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("wifi: nmcli connect: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
