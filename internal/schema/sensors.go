package schema

// Sensor is one reading in a sensor batch. Sensor data is not persisted;
// the endpoint acknowledges and logs it.
type Sensor struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
	Battery     float64 `json:"battery"`
	Temperature float64 `json:"temperature"`
}

// SensorData is a batch of sensor readings.
type SensorData struct {
	Sensors []Sensor `json:"sensors" binding:"required"`
}
