package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ceyizapp/ceyiz/internal/api"
)

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	var email, password string
	fs.StringVar(&email, "email", "", "account email")
	fs.StringVar(&password, "password", "", "account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if email == "" {
		return fmt.Errorf("login requires -email")
	}
	if password == "" {
		var err error
		password, err = promptLine("Password: ")
		if err != nil {
			return err
		}
	}

	result, err := a.client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := a.session.SetSession(ctx, result.User, result.Token, result.RefreshToken); err != nil {
		return err
	}

	a.notifier.Success("logged in as %s", result.User.Email)
	return nil
}

func (a *app) cmdLogout(ctx context.Context) error {
	// The remote call is best effort: the local session is cleared either
	// way, matching the logout contract.
	if a.session.Authenticated() {
		if err := a.client.Logout(ctx); err != nil {
			a.notifier.Warning("remote logout failed: %s", err)
		}
	}

	if err := a.session.Clear(ctx); err != nil {
		return err
	}
	a.notifier.Success("logged out")
	return nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	var name, email, password string
	fs.StringVar(&name, "name", "", "display name")
	fs.StringVar(&email, "email", "", "account email")
	fs.StringVar(&password, "password", "", "account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if name == "" || email == "" {
		return fmt.Errorf("register requires -name and -email")
	}
	if password == "" {
		var err error
		password, err = promptLine("Password: ")
		if err != nil {
			return err
		}
	}

	if err := a.client.Signup(ctx, name, email, password); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	a.session.SetPendingVerification(email)
	a.notifier.Success("account created, check %s for the verification code", email)
	a.notifier.Info("run 'ceyiz verify -code <code>' to finish")
	return nil
}

func (a *app) cmdVerify(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	var code string
	fs.StringVar(&code, "code", "", "emailed verification code")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if code == "" {
		return fmt.Errorf("verify requires -code")
	}

	user, err := a.client.VerifyEmail(ctx, code)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	a.notifier.Success("email verified for %s, you can log in now", user.Email)
	return nil
}

func (a *app) cmdForgotPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("forgot-password", flag.ContinueOnError)
	var email string
	fs.StringVar(&email, "email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("forgot-password requires -email")
	}

	if err := a.client.ForgotPassword(ctx, email); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	a.notifier.Success("reset link sent to %s", email)
	return nil
}

func (a *app) cmdResetPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset-password", flag.ContinueOnError)
	var token, password string
	fs.StringVar(&token, "token", "", "reset token from the emailed link")
	fs.StringVar(&password, "password", "", "new password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if token == "" {
		return fmt.Errorf("reset-password requires -token")
	}
	if password == "" {
		var err error
		password, err = promptLine("New password: ")
		if err != nil {
			return err
		}
	}

	if err := a.client.ResetPassword(ctx, token, password); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	a.notifier.Success("password updated, you can log in now")
	return nil
}

func (a *app) cmdWhoami(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	user, err := a.client.CheckAuth(ctx)
	if err != nil {
		// A rejected token means the session is stale; clear it so the
		// next command goes straight to login guidance.
		if errors.Is(err, api.ErrUnauthorized) {
			if clearErr := a.session.Clear(ctx); clearErr != nil {
				return clearErr
			}
			return fmt.Errorf("session rejected by server, run 'ceyiz login' again")
		}
		return err
	}

	a.session.SetUser(user)
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	return nil
}

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
