package main

import (
	"github.com/spf13/cobra"

	profileRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/profile"
	profilesService "github.com/m04kA/SMC-HotelBookingService/internal/service/profiles"
)

// grantAdminCmd выдает или снимает права администратора.
// Через HTTP API флаг не меняется.
func grantAdminCmd(configPath *string) *cobra.Command {
	var revoke bool

	cmd := &cobra.Command{
		Use:   "grant-admin <email>",
		Short: "Grant (or revoke with --revoke) admin rights for a registered user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(cmd.Context(), *configPath, false)
			if err != nil {
				return err
			}
			defer rt.Close()

			svc := profilesService.NewService(profileRepo.NewRepository(rt.db), rt.log)
			if err := svc.SetAdmin(cmd.Context(), args[0], !revoke); err != nil {
				return err
			}

			rt.log.Info("Admin flag for %s set to %t", args[0], !revoke)
			return nil
		},
	}
	cmd.Flags().BoolVar(&revoke, "revoke", false, "remove admin rights instead of granting")

	return cmd
}
