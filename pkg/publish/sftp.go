// Package publish uploads exported calendars to a web host over SFTP.
package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"socctl/pkg/config"
)

// ErrNotConfigured is returned when the SFTP target lacks a host, user or password.
var ErrNotConfigured = errors.New("sftp: target not configured (host, user and SOCCTL_SFTP_PASSWORD are required)")

func validate(target config.SFTPTarget) (config.SFTPTarget, error) {
	if target.Host == "" || target.User == "" || target.Password == "" {
		return target, ErrNotConfigured
	}
	if target.Port <= 0 {
		target.Port = 22
	}
	if target.RemoteDir == "" {
		target.RemoteDir = "/"
	}
	return target, nil
}

// UploadFile copies localPath to remoteName inside the target's remote directory.
func UploadFile(ctx context.Context, target config.SFTPTarget, localPath, remoteName string) error {
	target, err := validate(target)
	if err != nil {
		return err
	}

	src, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("sftp: open local file: %w", err)
	}
	defer src.Close()

	hostKeys, err := hostKeyCallback(target.KnownHosts)
	if err != nil {
		return err
	}

	sshCfg := &ssh.ClientConfig{
		User:            target.User,
		Auth:            []ssh.AuthMethod{ssh.Password(target.Password)},
		HostKeyCallback: hostKeys,
		Timeout:         20 * time.Second,
	}

	addr := fmt.Sprintf("%s:%d", target.Host, target.Port)

	type dialRes struct {
		client *ssh.Client
		err    error
	}
	ch := make(chan dialRes, 1)
	go func() {
		c, err := ssh.Dial("tcp", addr, sshCfg)
		ch <- dialRes{client: c, err: err}
	}()

	var sshClient *ssh.Client
	select {
	case <-ctx.Done():
		go func() {
			if r := <-ch; r.client != nil {
				r.client.Close()
			}
		}()
		return fmt.Errorf("sftp: dial canceled: %w", ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return fmt.Errorf("sftp: dial error: %w", r.err)
		}
		sshClient = r.client
	}
	defer sshClient.Close()

	client, err := sftp.NewClient(sshClient)
	if err != nil {
		return fmt.Errorf("sftp: new client: %w", err)
	}
	defer client.Close()

	return upload(client, target.RemoteDir, remoteName, src)
}

// hostKeyCallback only accepts servers whose key is listed in path, or in
// ~/.ssh/known_hosts when path is empty.
func hostKeyCallback(path string) (ssh.HostKeyCallback, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("sftp: could not find user home directory: %w", err)
		}
		path = filepath.Join(home, ".ssh", "known_hosts")
	}

	cb, err := knownhosts.New(path)
	if err != nil {
		return nil, fmt.Errorf("sftp: load known hosts %s: %w", path, err)
	}
	return cb, nil
}

// upload writes src to dir/name, creating dir first.
func upload(client *sftp.Client, dir, name string, src io.Reader) error {
	if err := client.MkdirAll(dir); err != nil {
		return fmt.Errorf("sftp: mkdir %s: %w", dir, err)
	}

	remotePath := path.Join(dir, name)
	dst, err := client.Create(remotePath)
	if err != nil {
		return fmt.Errorf("sftp: create remote file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("sftp: upload copy: %w", err)
	}
	return nil
}
