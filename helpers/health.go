package helpers

import (
	"errors"
	"fmt"

	"code.cloudfoundry.org/bam-broker/models"

	"golang.org/x/crypto/bcrypt"
)

type HealthConfig struct {
	ServerConfig          ServerConfig     `yaml:"server_config" json:"server_config"`
	BasicAuth             models.BasicAuth `yaml:"basic_auth" json:"basic_auth"`
	ReadinessCheckEnabled bool             `yaml:"readiness_enabled" json:"readiness_enabled"`
}

var ErrConfiguration = errors.New("configuration error")

func (c *HealthConfig) Validate() error {
	ba := c.BasicAuth
	switch {
	case ba.Username != "" && ba.UsernameHash != "":
		return fmt.Errorf("%w: both health username and username_hash are set, please provide only one of them", ErrConfiguration)
	case ba.Password != "" && ba.PasswordHash != "":
		return fmt.Errorf("%w: both health password and password_hash are set, please provide only one of them", ErrConfiguration)
	}

	for field, hash := range map[string]string{"username_hash": ba.UsernameHash, "password_hash": ba.PasswordHash} {
		if hash == "" {
			continue
		}
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return fmt.Errorf("%w: health %s is not a valid bcrypt hash", ErrConfiguration, field)
		}
	}

	hasUser := ba.Username != "" || ba.UsernameHash != ""
	hasPassword := ba.Password != "" || ba.PasswordHash != ""
	if hasUser != hasPassword {
		return fmt.Errorf("%w: health basic auth needs both a username and a password", ErrConfiguration)
	}
	return nil
}
