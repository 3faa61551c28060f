package nasa

// RoverListResponse mirrors the payload returned by GET /rovers.
type RoverListResponse struct {
	Rovers []Rover `json:"rovers"`
}

// Rover describes a rover mission in transport-friendly form. All fields
// arrive verbatim from the upstream API and are immutable once fetched.
type Rover struct {
	Name        string `json:"name"`
	LaunchDate  string `json:"launch_date"`
	LandingDate string `json:"landing_date"`
	Status      string `json:"status"`
	MaxDate     string `json:"max_date"`
}

// Gallery aggregates the photos fetched for a single rover.
type Gallery struct {
	Photos []Photo `json:"photos"`
}

// Photo is a single photograph record. Camera and rover attribution are
// optional upstream; absent values are defaulted at render time, not here.
type Photo struct {
	ImgSrc    string     `json:"img_src"`
	EarthDate string     `json:"earth_date"`
	Camera    Camera     `json:"camera"`
	Rover     PhotoRover `json:"rover"`
}

// Camera identifies the instrument that took a photo.
type Camera struct {
	FullName string `json:"full_name"`
}

// PhotoRover carries the rover attribution embedded in each photo record.
type PhotoRover struct {
	Name string `json:"name"`
}
