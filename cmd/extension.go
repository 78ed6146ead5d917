package cmd

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

// RunExtension attempts to find and execute an external tb-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "tb-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		return false, 0
	}

	cfg, err := loadConfig(flag.CommandLine)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return true, 2
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// The resolved configuration is passed as environment variables.
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvStore+"="+cfg.Store)
	cmd.Env = append(cmd.Env, EnvCurrency+"="+cfg.Currency)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(cfg.Verbose))
	cmd.Env = append(cmd.Env, EnvLogFormat+"="+cfg.LogFormat)

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
