// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command hashpass prints a password hash suitable for seeding officer and
// user rows by hand.
//
// # Usage
//
//	hashpass -kind officer   # bcrypt, for cso_officers.password_hash
//	hashpass -kind user      # hex of salt || PBKDF2-SHA256, for users.password_hash
//
// The password is read from the terminal without echo. When stdin is not a
// terminal the first line of stdin is used instead.
package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/taibuivan/storehub/internal/platform/sec"
)

const (
	kindOfficer = "officer"
	kindUser    = "user"
)

var errEmptyPassword = errors.New("hashpass: empty password")

// readPassword reads from the terminal without echo. Replaced in tests.
var readPassword = term.ReadPassword

func main() {
	kind := flag.String("kind", kindOfficer, "hash format: officer (bcrypt) or user (pbkdf2)")
	flag.Parse()

	password, err := promptPassword(os.Stdin, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	hash, err := hashFor(*kind, password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Fprintln(os.Stdout, hash)
}

// promptPassword reads the password, without echo when stdin is a terminal.
func promptPassword(stdin *os.File, prompt io.Writer) (string, error) {
	fd := int(stdin.Fd())
	if !term.IsTerminal(fd) {
		return readLine(stdin)
	}

	fmt.Fprint(prompt, "Password: ")
	raw, err := readPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("hashpass: read password: %w", err)
	}
	if len(raw) == 0 {
		return "", errEmptyPassword
	}
	return string(raw), nil
}

func readLine(reader io.Reader) (string, error) {
	line, err := bufio.NewReader(reader).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("hashpass: read stdin: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errEmptyPassword
	}
	return line, nil
}

// hashFor renders the password in the storage format of the given principal kind.
func hashFor(kind, password string) (string, error) {
	switch kind {
	case kindOfficer:
		return sec.HashPassword(password)
	case kindUser:
		digest, err := sec.HashUserPassword(password)
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(digest), nil
	default:
		return "", fmt.Errorf("hashpass: unknown kind %q (want %s or %s)", kind, kindOfficer, kindUser)
	}
}
