package domain

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ZonePolygon is the boundary of the within-zone ($25) pricing area around
// Santo Domingo. The polygon is shipped to the map for visual reference;
// classification itself is a payment-amount proxy and never tests
// coordinates against this shape.
var ZonePolygon = []Coordinate{
	{18.470910, -69.881842},
	{18.467871, -69.889721},
	{18.464781, -69.893714},
	{18.461370, -69.899534},
	{18.460956, -69.902208},
	{18.456405, -69.913385},
	{18.446481, -69.924817},
	{18.426873, -69.971667},
	{18.426485, -69.981364},
	{18.424306, -69.989173},
	{18.428616, -69.990499},
	{18.442414, -69.977843},
	{18.451322, -69.974168},
	{18.461973, -69.969014},
	{18.484094, -69.967227},
	{18.486417, -69.969167},
	{18.489507, -69.969121},
	{18.494270, -69.964476},
	{18.507445, -69.960890},
	{18.520477, -69.936902},
	{18.509636, -69.915537},
	{18.513721, -69.896844},
	{18.507693, -69.878878},
	{18.500750, -69.875250},
	{18.494284, -69.877883},
	{18.488074, -69.883216},
	{18.471752, -69.881296},
}
