// Command hashpw prints a bcrypt hash for a password read from stdin, in
// the form expected by AUTH_USERS.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"footballclub/models"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("user", "", "username to prefix the entry with")
	role := flag.String("role", string(models.RoleUser), "role for the entry (admin or user)")
	flag.Parse()

	if !models.Role(*role).Valid() {
		fmt.Fprintf(os.Stderr, "unknown role %q\n", *role)
		os.Exit(2)
	}

	password, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && password == "" {
		fmt.Fprintln(os.Stderr, "failed to read password:", err)
		os.Exit(1)
	}
	password = strings.TrimRight(password, "\r\n")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to hash password:", err)
		os.Exit(1)
	}

	if *username == "" {
		fmt.Println(string(hash))
		return
	}
	fmt.Printf("%s:%s:%s\n", *username, hash, *role)
}
