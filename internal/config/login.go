package config

import "github.com/spf13/cobra"

type Login struct {
	*API

	// Flags
	ProfileName string
}

func (c *Login) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.ProfileName, "profile", "", "name to store the new profile under (prompted if empty)")
}
