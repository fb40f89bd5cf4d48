package config

import "github.com/spf13/cobra"

type APIKey struct {
	*API
}

type APIKeyGenerate struct {
	*APIKey

	// Flags
	Name string
	Role string
}

func (c *APIKeyGenerate) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.Name, "name", "", "name identifying the new key (prompted if empty)")
	cmd.Flags().StringVar(&c.Role, "role", "", "key scope, read or readwrite (prompted if empty)")
}
