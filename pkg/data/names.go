package data

import "math/rand"

// Callsigns is the pool of rival driver names used when the config leaves
// the rival unnamed.
var Callsigns = []string{
	"Viper", "Comet", "Falcon", "Turbo", "Blaze", "Apex", "Drift",
	"Nitro", "Vector", "Phantom", "Slick", "Maverick", "Torque",
	"Redline", "Gasket", "Piston", "Clutch", "Octane",
}

// RandomCallsign picks a rival name from the pool.
func RandomCallsign() string {
	return Callsigns[rand.Intn(len(Callsigns))]
}
