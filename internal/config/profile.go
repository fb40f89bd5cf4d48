package config

type Profile struct {
	*API
}

type ProfileList struct {
	*Profile
}

type ProfileSwitch struct {
	*Profile
}

type ProfileDelete struct {
	*Profile
}
