package cli

import (
	"context"
	"fmt"

	pb "github.com/dmitrijs2005/keyescrow/internal/proto"
	"github.com/spf13/cobra"
)

// target identifies a key and the owner acting on it.
type target struct {
	keyID      string
	identifier string
}

func (t *target) register(cmd *cobra.Command, withKey bool) {
	if withKey {
		cmd.Flags().StringVarP(&t.keyID, "key", "k", "", "key id")
		_ = cmd.MarkFlagRequired("key")
	}
	cmd.Flags().StringVarP(&t.identifier, "id", "i", "", "owner phone number (E.164) or email address")
	_ = cmd.MarkFlagRequired("id")
}

// run executes call with the configured timeout and turns service errors
// into readable messages.
func (a *App) run(cmd *cobra.Command, call func(ctx context.Context) error) error {
	ctx, cancel := a.withTimeout(cmd.Context())
	defer cancel()
	if err := call(ctx); err != nil {
		return describe(err, a.config.ServerEndpointAddr)
	}
	return nil
}

func newCreateCommand(app *App) *cobra.Command {
	var t target
	var pin string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a key owned by an identifier",
		Long: `Create a new escrowed key owned by a phone number or email address.

A verification code is sent to the identifier; confirm it with "verify"
before the key can be used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.secret(cmd.Flags().Changed("pin"), pin, "PIN (empty for none)")
			if err != nil {
				return err
			}
			return app.run(cmd, func(ctx context.Context) error {
				resp, err := app.escrow.CreateKey(ctx, &pb.CreateKeyRequest{Identifier: t.identifier, Pin: p})
				if err != nil {
					return err
				}
				fmt.Fprintf(app.out, "key: %s\nA verification code was sent to %s.\n", resp.GetKeyId(), t.identifier)
				return nil
			})
		},
	}
	t.register(cmd, false)
	cmd.Flags().StringVar(&pin, "pin", "", "PIN protecting the key")
	return cmd
}

func newAddOwnerCommand(app *App) *cobra.Command {
	var t target
	var pin string

	cmd := &cobra.Command{
		Use:   "add-owner",
		Short: "Add another owner to a key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.secret(cmd.Flags().Changed("pin"), pin, "Key PIN")
			if err != nil {
				return err
			}
			return app.run(cmd, func(ctx context.Context) error {
				if _, err := app.escrow.AddOwner(ctx, &pb.AddOwnerRequest{KeyId: t.keyID, Identifier: t.identifier, Pin: p}); err != nil {
					return err
				}
				fmt.Fprintf(app.out, "A verification code was sent to %s.\n", t.identifier)
				return nil
			})
		},
	}
	t.register(cmd, true)
	cmd.Flags().StringVar(&pin, "pin", "", "current key PIN")
	return cmd
}

func newVerifyCommand(app *App) *cobra.Command {
	var t target
	var code string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Confirm ownership with the code sent on create or add-owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.code(cmd.Flags().Changed("code"), code)
			if err != nil {
				return err
			}
			return app.run(cmd, func(ctx context.Context) error {
				if _, err := app.escrow.VerifyOwner(ctx, &pb.VerifyOwnerRequest{KeyId: t.keyID, Identifier: t.identifier, Code: c}); err != nil {
					return err
				}
				fmt.Fprintln(app.out, "verified")
				return nil
			})
		},
	}
	t.register(cmd, true)
	cmd.Flags().StringVar(&code, "code", "", "one-time code")
	return cmd
}

func newRequestCodeCommand(app *App) *cobra.Command {
	var t target
	var op string

	cmd := &cobra.Command{
		Use:   "request-code",
		Short: "Send a one-time code for an operation",
		Long: `Send a one-time code for one operation: read, change-pin, reset-pin
or remove. The code is only accepted by that operation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, func(ctx context.Context) error {
				if _, err := app.escrow.RequestCode(ctx, &pb.RequestCodeRequest{KeyId: t.keyID, Identifier: t.identifier, Op: op}); err != nil {
					return err
				}
				fmt.Fprintf(app.out, "A %s code was sent to %s.\n", op, t.identifier)
				return nil
			})
		},
	}
	t.register(cmd, true)
	cmd.Flags().StringVar(&op, "op", "", "operation: read, change-pin, reset-pin, remove")
	_ = cmd.MarkFlagRequired("op")
	return cmd
}

func newReadCommand(app *App) *cobra.Command {
	var t target
	var code, pin string

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Print the key material",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.code(cmd.Flags().Changed("code"), code)
			if err != nil {
				return err
			}
			p, err := app.secret(cmd.Flags().Changed("pin"), pin, "Key PIN")
			if err != nil {
				return err
			}
			return app.run(cmd, func(ctx context.Context) error {
				resp, err := app.escrow.ReadKey(ctx, &pb.ReadKeyRequest{KeyId: t.keyID, Identifier: t.identifier, Code: c, Pin: p})
				if err != nil {
					return err
				}
				fmt.Fprintln(app.out, resp.GetEncryptionKey())
				return nil
			})
		},
	}
	t.register(cmd, true)
	cmd.Flags().StringVar(&code, "code", "", "one-time read code")
	cmd.Flags().StringVar(&pin, "pin", "", "key PIN")
	return cmd
}

func newChangePinCommand(app *App) *cobra.Command {
	var t target
	var code, pin, newPin string

	cmd := &cobra.Command{
		Use:   "change-pin",
		Short: "Replace the PIN, knowing the current one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.code(cmd.Flags().Changed("code"), code)
			if err != nil {
				return err
			}
			p, err := app.secret(cmd.Flags().Changed("pin"), pin, "Current PIN")
			if err != nil {
				return err
			}
			np, err := app.secret(cmd.Flags().Changed("new-pin"), newPin, "New PIN (empty to remove)")
			if err != nil {
				return err
			}
			return app.run(cmd, func(ctx context.Context) error {
				req := &pb.ChangePinRequest{KeyId: t.keyID, Identifier: t.identifier, Code: c, Pin: p, NewPin: np}
				if _, err := app.escrow.ChangePin(ctx, req); err != nil {
					return err
				}
				fmt.Fprintln(app.out, "PIN changed")
				return nil
			})
		},
	}
	t.register(cmd, true)
	cmd.Flags().StringVar(&code, "code", "", "one-time change-pin code")
	cmd.Flags().StringVar(&pin, "pin", "", "current PIN")
	cmd.Flags().StringVar(&newPin, "new-pin", "", "new PIN")
	return cmd
}

func newResetPinCommand(app *App) *cobra.Command {
	var t target
	var code, newPin string

	cmd := &cobra.Command{
		Use:   "reset-pin",
		Short: "Replace a forgotten PIN after the reset delay",
		Long: `Replace a forgotten PIN. The first request starts a waiting period;
repeat the request with a fresh reset-pin code once it has passed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.code(cmd.Flags().Changed("code"), code)
			if err != nil {
				return err
			}
			np, err := app.secret(cmd.Flags().Changed("new-pin"), newPin, "New PIN (empty for none)")
			if err != nil {
				return err
			}
			return app.run(cmd, func(ctx context.Context) error {
				if _, err := app.escrow.ResetPin(ctx, &pb.ResetPinRequest{KeyId: t.keyID, Identifier: t.identifier, Code: c, NewPin: np}); err != nil {
					return err
				}
				fmt.Fprintln(app.out, "PIN reset")
				return nil
			})
		},
	}
	t.register(cmd, true)
	cmd.Flags().StringVar(&code, "code", "", "one-time reset-pin code")
	cmd.Flags().StringVar(&newPin, "new-pin", "", "new PIN")
	return cmd
}

func newRemoveCommand(app *App) *cobra.Command {
	var t target
	var code, pin string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Delete the key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.code(cmd.Flags().Changed("code"), code)
			if err != nil {
				return err
			}
			p, err := app.secret(cmd.Flags().Changed("pin"), pin, "Key PIN")
			if err != nil {
				return err
			}
			return app.run(cmd, func(ctx context.Context) error {
				if _, err := app.escrow.RemoveKey(ctx, &pb.RemoveKeyRequest{KeyId: t.keyID, Identifier: t.identifier, Code: c, Pin: p}); err != nil {
					return err
				}
				fmt.Fprintln(app.out, "key removed")
				return nil
			})
		},
	}
	t.register(cmd, true)
	cmd.Flags().StringVar(&code, "code", "", "one-time remove code")
	cmd.Flags().StringVar(&pin, "pin", "", "key PIN")
	return cmd
}

func newRemoveOwnerCommand(app *App) *cobra.Command {
	var t target
	var code, pin string

	cmd := &cobra.Command{
		Use:   "remove-owner",
		Short: "Unbind an owner from the key",
		Long: `Unbind the given owner from the key. The key and its other owners are
kept. Needs a "remove" code sent to that owner and the key PIN.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.code(cmd.Flags().Changed("code"), code)
			if err != nil {
				return err
			}
			p, err := app.secret(cmd.Flags().Changed("pin"), pin, "Key PIN")
			if err != nil {
				return err
			}
			return app.run(cmd, func(ctx context.Context) error {
				if _, err := app.escrow.RemoveOwner(ctx, &pb.RemoveOwnerRequest{KeyId: t.keyID, Identifier: t.identifier, Code: c, Pin: p}); err != nil {
					return err
				}
				fmt.Fprintf(app.out, "%s no longer owns the key\n", t.identifier)
				return nil
			})
		},
	}
	t.register(cmd, true)
	cmd.Flags().StringVar(&code, "code", "", "one-time remove code")
	cmd.Flags().StringVar(&pin, "pin", "", "key PIN")
	return cmd
}

func newPingCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the server answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, func(ctx context.Context) error {
				resp, err := app.escrow.Ping(ctx, &pb.PingRequest{})
				if err != nil {
					return err
				}
				fmt.Fprintln(app.out, resp.GetStatus())
				return nil
			})
		},
	}
}
