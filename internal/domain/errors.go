package domain

import "errors"

// Domeinfouten (zonder externe dependencies).
var (
	ErrNotFound           = errors.New("resource niet gevonden")
	ErrProjectNotFound    = errors.New("project niet gevonden")
	ErrInvalidInput       = errors.New("ongeldige invoer")
	ErrInvalidKostenType  = errors.New("ongeldig kostentype")
	ErrUnauthorized       = errors.New("niet geautoriseerd")
	ErrForbidden          = errors.New("toegang geweigerd")
	ErrMedewerkerRequired = errors.New("medewerker is verplicht voor arbeidskosten")
	ErrMachineRequired    = errors.New("machine is verplicht voor machinekosten")
	ErrProductRequired    = errors.New("product is verplicht voor materiaalkosten")
)
