package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serialembed/serialembed/internal/config"
	"github.com/serialembed/serialembed/internal/transport"
	"github.com/serialembed/serialembed/internal/version"
)

func TestPrintPorts(t *testing.T) {
	tests := []struct {
		name  string
		ports []transport.PortDetails
		want  string
	}{
		{
			name: "none",
			want: "No serial ports found!\n",
		},
		{
			name:  "plain",
			ports: []transport.PortDetails{{Name: "COM3"}},
			want:  "Found port: COM3\n",
		},
		{
			name: "usb",
			ports: []transport.PortDetails{{
				Name: "/dev/ttyACM0", IsUSB: true, VID: "2e8a", PID: "000a", SerialNumber: "E6614", Product: "Pico",
			}},
			want: "Found port: /dev/ttyACM0\n   USB ID     2e8a:000a\n   USB serial E6614\n   Product    Pico\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := &cobra.Command{}
			cmd.SetOut(&out)

			printPorts(cmd, tt.ports)

			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestListMock(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"list", "--mock"})
	defer func() { flagMock = false }()

	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "Found port: /dev/ttyMOCK0\nFound port: /dev/ttyMOCK1\n", out.String())
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "serialembed "+version.Full()+"\n", out.String())
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	defer func() { flagConfig, flagForce = "", false }()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "init", "--config", path})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "Wrote "+path+"\n", out.String())

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	rootCmd.SetArgs([]string{"config", "init", "--config", path})
	assert.Error(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"config", "init", "--config", path, "--force"})
	assert.NoError(t, rootCmd.Execute())
}
