package config

type Organization struct {
	*API
}

type OrganizationSwitch struct {
	*Organization
}
