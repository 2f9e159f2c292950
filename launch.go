package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/shirou/gopsutil/process"
)

var (
	lockFilePath = filepath.Join(panelInstallDir, "panel.lock")
	pidFilePath  = filepath.Join(panelInstallDir, "panel.pid")
	managedPID   int          // PID of the managed command
	lock         *flock.Flock // held while the managed command runs
	killedByUs   bool
)

// acquirePanelLock takes the launch lock for this panel instance. If another
// instance holds it, the pid file names the running command and launching is
// refused.
func acquirePanelLock() (*flock.Flock, error) {
	l := flock.New(lockFilePath)
	locked, err := l.TryLock()
	if err != nil {
		log.Printf("Failed to acquire lock %s: %v", lockFilePath, err)
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		// We could not lock, so the lock owner should have written a PID
		data, err := os.ReadFile(pidFilePath)
		if err == nil && len(data) > 0 {
			pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
			if err == nil && pid != 0 {
				log.Printf("The managed command is already running with PID %d", pid)
				return nil, fmt.Errorf("the managed command is already running with PID %d", pid)
			}
			log.Printf("Failed to parse PID from PID file: %v", err)
			os.Remove(pidFilePath)
		}
		return nil, fmt.Errorf("another panel instance holds %s", lockFilePath)
	}
	return l, nil
}

func releasePanelLock() {
	log.Println("Released panel lock")
	if lock != nil {
		lock.Unlock()
		lock = nil
	}
	os.Remove(lockFilePath)
	os.Remove(pidFilePath)
}

// killLockingProcess terminates a stale command left behind by a previous
// panel run, identified by the pid file.
func killLockingProcess() error {
	data, err := os.ReadFile(pidFilePath)
	if err != nil {
		return fmt.Errorf("failed to read PID file: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return fmt.Errorf("failed to parse PID from PID file: %w", err)
	}

	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		releasePanelLock()
		return fmt.Errorf("failed to find process with PID %d: %w", pid, err)
	}

	if isWindows() {
		if err := proc.Terminate(); err != nil {
			releasePanelLock()
			return fmt.Errorf("failed to terminate process with PID %d: %w", pid, err)
		}
	} else {
		if err := proc.SendSignal(syscall.SIGKILL); err != nil {
			releasePanelLock()
			return fmt.Errorf("failed to kill process with PID %d: %w", pid, err)
		}
	}
	releasePanelLock()
	log.Printf("Killed process with PID %d\n", pid)
	return nil
}

// launchManaged starts the configured command and watches it. onReady runs
// once the command answers on its port, onExited when it terminates (with
// stoppedByUser true when the panel itself stopped it).
func launchManaged(onReady func(pid int), onExited func(err error, stoppedByUser bool)) error {
	commandLine := GetCommand()
	if commandLine == "" {
		return fmt.Errorf("no PANEL_COMMAND configured in panel.properties")
	}

	// Acquire lock file
	var err error
	lock, err = acquirePanelLock()
	if err != nil {
		return err
	}

	// Check if port is already in use
	if err := checkPort(); err == nil {
		releasePanelLock()
		log.Printf("Another program is running on port %s", GetPort())
		return fmt.Errorf("another program is running on port %s", GetPort())
	}

	parts := strings.Fields(commandLine)
	if len(parts) == 0 {
		releasePanelLock()
		return fmt.Errorf("PANEL_COMMAND is blank")
	}
	cmd := exec.Command(parts[0], parts[1:]...)

	// Add all properties from environment to process env
	env := os.Environ()
	for _, key := range environment.Keys() {
		value, _ := environment.Get(key)
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}
	cmd.Env = env

	log.Printf("Starting managed command: %v\n", cmd.Args)
	if err := cmd.Start(); err != nil {
		releasePanelLock()
		return fmt.Errorf("failed to start %q: %w", commandLine, err)
	}

	// Store the PID in the PID file and globally
	managedPID = cmd.Process.Pid
	if err := os.WriteFile(pidFilePath, []byte(fmt.Sprintf("%d\n", managedPID)), 0644); err != nil {
		log.Printf("Failed to write PID to PID file: %v\n", err)
	} else {
		log.Printf("Wrote PID %d to PID file %s\n", managedPID, pidFilePath)
	}

	log.Printf("Launched %q (PID: %d), waiting for port %s...\n", commandLine, managedPID, GetPort())

	// Watch readiness and termination in the background
	exit := make(chan error, 1)
	go func() {
		exit <- cmd.Wait()
	}()
	ready := monitorPort()

	go func() {
		pid := managedPID
		select {
		case err := <-exit:
			// Process ended before becoming ready
			if err == nil {
				err = fmt.Errorf("process exited before becoming ready")
			}
			log.Printf("Managed command (PID: %d) failed to start properly: %v\n", pid, err)
			releasePanelLock()
			managedPID = 0
			onExited(err, false)
			return
		case err := <-ready:
			if err != nil {
				log.Printf("Managed command (PID: %d): %v\n", pid, err)
			} else {
				log.Printf("Managed command (PID: %d) is ready (port %s responding)\n", pid, GetPort())
				onReady(pid)
			}
		}

		// Process is up; wait for it to end
		err := <-exit
		if killedByUs {
			// If we stopped it, just report normal termination
			log.Printf("Managed command (PID: %d) was stopped by user\n", pid)
		} else if err != nil {
			log.Printf("Managed command (PID: %d) terminated with error: %v\n", pid, err)
		} else {
			log.Printf("Managed command (PID: %d) exited normally\n", pid)
		}
		stopped := killedByUs
		killedByUs = false // Reset flag
		managedPID = 0
		releasePanelLock()
		onExited(err, stopped)
	}()

	return nil
}

// stopManaged stops the running command. This is the destructive action the
// confirmation slider guards.
func stopManaged() error {
	if managedPID == 0 {
		return fmt.Errorf("no managed command is running")
	}
	pid := managedPID
	log.Printf("Stopping managed command (PID: %d)...\n", pid)
	killedByUs = true

	if err := GracefullyStopProcess(pid); err != nil {
		killedByUs = false
		return fmt.Errorf("failed to stop managed command (PID: %d): %w", pid, err)
	}
	return nil
}
