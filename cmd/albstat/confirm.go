package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// confirmOverwrite asks whether an existing output at key may be replaced.
// Anything but "n" or "no" is consent, including an empty line. Closed input is
// not. --yes skips the question.
func confirmOverwrite(cmd *cobra.Command, key string) bool {
	if yes, _ := cmd.Flags().GetBool(flagYes); yes {
		return true
	}
	return confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("%s exists. Do you want to continue? [Y|n] ", key))
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	_, _ = fmt.Fprint(out, prompt)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "n", "no":
		return false
	default:
		return true
	}
}
