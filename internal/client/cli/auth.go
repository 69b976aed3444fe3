package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/coursehub/internal/client/models"
	"github.com/dmitrijs2005/coursehub/internal/common"
)

// getSimpleText and getPassword are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) Register(ctx context.Context) error {
	var r models.Registration
	var err error

	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Enter first name", &r.FirstName},
		{"Enter last name", &r.LastName},
		{"Enter email", &r.Email},
	} {
		if *f.dst, err = getSimpleText(a.reader, f.prompt, a.out); err != nil {
			return err
		}
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	r.Password = string(password)

	if err := a.authService.Register(ctx, r); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "User registered successfully! You can log in now.")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, email, password); err != nil {
		return err
	}

	a.setEmail(email)
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.setEmail("")
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
