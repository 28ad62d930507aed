package command

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wellspring-health/clinic/auth"
	"github.com/wellspring-health/clinic/users"
)

var usersCreateParams = struct {
	Name           string
	Email          string
	Role           string
	Specialization string
}{}

var usersTokenParams = struct {
	TTL time.Duration
}{}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Users",
	Long:  "The users command is used to manage patients, doctors and admins",
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(createUser) },
}

var usersTokenCmd = &cobra.Command{
	Use:   "token {userId}",
	Args:  cobra.ExactArgs(1),
	Short: "Issue a session token for an existing user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(repository users.Repository) error {
			return issueToken(repository, args[0])
		})
	},
}

func createUser(repository users.Repository) error {
	role := users.Role(usersCreateParams.Role)
	if role != users.RolePatient && !role.IsClinician() {
		return fmt.Errorf("unknown role %q", usersCreateParams.Role)
	}

	create := &users.User{
		Name:  usersCreateParams.Name,
		Email: usersCreateParams.Email,
		Role:  role,
	}
	if usersCreateParams.Specialization != "" {
		create.Specialization = &usersCreateParams.Specialization
	}

	user, err := repository.Create(context.Background(), create)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s %s\n", user.UserId, user.Role, user.Name)
	return nil
}

func issueToken(repository users.Repository, userId string) error {
	cfg, err := auth.NewConfig()
	if err != nil {
		return err
	}

	user, err := repository.Get(context.Background(), userId)
	if err != nil {
		return err
	}

	token, err := auth.NewSessionToken([]byte(cfg.SessionTokenSecret), auth.NewClaims(user.UserId, user.Role, usersTokenParams.TTL))
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}

func init() {
	createFlags := usersCreateCmd.Flags()
	createFlags.StringVar(&usersCreateParams.Name, "name", "", "Display name of the user")
	createFlags.StringVar(&usersCreateParams.Email, "email", "", "Email of the user")
	createFlags.StringVar(&usersCreateParams.Role, "role", string(users.RolePatient), "Role of the user (patient, doctor, admin)")
	createFlags.StringVar(&usersCreateParams.Specialization, "specialization", "", "Specialization of a doctor")
	_ = usersCreateCmd.MarkFlagRequired("name")
	_ = usersCreateCmd.MarkFlagRequired("email")

	usersTokenCmd.Flags().DurationVar(&usersTokenParams.TTL, "ttl", 24*time.Hour, "Validity of the token")

	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersTokenCmd)
	rootCmd.AddCommand(usersCmd)
}
