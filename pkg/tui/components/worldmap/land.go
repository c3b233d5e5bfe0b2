package worldmap

// Coarse continent outlines as (longitude, latitude) rings. They only need to
// be good enough to orient the reader at terminal resolution.
var continents = [][][2]float64{
	// North America
	{
		{-168, 66}, {-162, 70}, {-156, 71}, {-140, 70}, {-128, 70}, {-115, 68}, {-95, 72},
		{-80, 73}, {-62, 66}, {-64, 60}, {-56, 52}, {-66, 45}, {-70, 42}, {-76, 35},
		{-81, 31}, {-80, 25}, {-82, 27}, {-85, 30}, {-90, 29}, {-97, 27}, {-97, 22},
		{-94, 18}, {-87, 21}, {-88, 16}, {-83, 15}, {-83, 9}, {-78, 8}, {-80, 7},
		{-86, 12}, {-92, 14}, {-96, 16}, {-105, 20}, {-106, 23}, {-110, 30}, {-110, 23},
		{-115, 30}, {-117, 32}, {-120, 34}, {-124, 40}, {-124, 47}, {-130, 54},
		{-136, 58}, {-146, 60}, {-152, 58}, {-158, 56}, {-164, 55}, {-160, 59},
		{-165, 62},
	},
	// Greenland
	{
		{-73, 78}, {-60, 82}, {-30, 83}, {-20, 80}, {-20, 70}, {-32, 67}, {-42, 60},
		{-50, 64}, {-54, 68}, {-58, 75},
	},
	// South America
	{
		{-77, 8}, {-72, 12}, {-62, 11}, {-52, 5}, {-50, 0}, {-35, -5}, {-39, -14},
		{-41, -22}, {-48, -26}, {-53, -33}, {-58, -38}, {-62, -39}, {-65, -45},
		{-68, -50}, {-69, -55}, {-72, -53}, {-75, -47}, {-73, -38}, {-71, -30},
		{-70, -18}, {-76, -14}, {-81, -6}, {-80, -2}, {-78, 2},
	},
	// Eurasia
	{
		{-10, 36}, {-9, 43}, {-2, 44}, {-5, 48}, {2, 51}, {8, 54}, {10, 57}, {5, 58},
		{5, 62}, {14, 68}, {20, 70}, {30, 71}, {40, 68}, {45, 68}, {60, 69}, {70, 73},
		{80, 73}, {100, 78}, {112, 76}, {130, 72}, {140, 72}, {160, 70}, {180, 69},
		{180, 65}, {178, 62}, {170, 60}, {163, 56}, {157, 51}, {155, 57}, {142, 59},
		{135, 54}, {140, 48}, {135, 43}, {130, 42}, {129, 35}, {126, 37}, {125, 40},
		{121, 40}, {122, 37}, {119, 35}, {121, 31}, {122, 29}, {119, 25}, {114, 22},
		{108, 21}, {106, 18}, {109, 12}, {105, 9}, {103, 10}, {100, 13}, {99, 8},
		{103, 1}, {101, 3}, {98, 8}, {98, 16}, {94, 17}, {92, 22}, {88, 22}, {86, 20},
		{80, 15}, {80, 10}, {77, 8}, {73, 17}, {72, 21}, {67, 25}, {61, 25}, {57, 26},
		{56, 24}, {59, 22}, {52, 17}, {44, 13}, {43, 17}, {35, 28}, {34, 31}, {36, 36},
		{28, 37}, {26, 40}, {23, 37}, {20, 40}, {14, 45}, {12, 44}, {16, 40}, {15, 38},
		{12, 42}, {9, 44}, {3, 43}, {0, 39}, {-2, 37}, {-6, 36},
	},
	// Africa
	{
		{-17, 21}, {-17, 15}, {-12, 8}, {-8, 4}, {0, 5}, {9, 4}, {10, 0}, {13, -6},
		{12, -12}, {15, -27}, {18, -34}, {26, -34}, {33, -28}, {35, -22}, {41, -15},
		{40, -10}, {39, -4}, {42, 2}, {51, 11}, {43, 12}, {37, 19}, {33, 28}, {32, 31},
		{20, 32}, {10, 34}, {11, 37}, {0, 36}, {-6, 36}, {-10, 30}, {-13, 27},
	},
	// Madagascar
	{{44, -25}, {47, -25}, {50, -15}, {49, -12}, {44, -17}},
	// Australia
	{
		{114, -22}, {122, -18}, {130, -12}, {137, -12}, {136, -16}, {141, -11},
		{146, -19}, {153, -25}, {153, -32}, {150, -37}, {146, -39}, {140, -38},
		{135, -34}, {131, -31}, {124, -34}, {115, -34}, {113, -26},
	},
	// Antarctica
	{
		{-180, -90}, {180, -90}, {180, -78}, {150, -68}, {90, -66}, {30, -69},
		{-20, -72}, {-60, -64}, {-75, -72}, {-100, -73}, {-150, -77}, {-180, -78},
	},
	// Japan
	{
		{130, 31}, {132, 35}, {136, 36}, {140, 41}, {141, 45}, {145, 43}, {141, 38},
		{140, 35}, {135, 33}, {131, 31},
	},
	// Great Britain
	{{-5, 50}, {1, 51}, {2, 53}, {-2, 56}, {-2, 58}, {-5, 58}, {-6, 55}, {-3, 54}, {-5, 52}},
	// Iceland
	{{-24, 64}, {-14, 64}, {-14, 66}, {-22, 66}},
	// Sumatra
	{{95, 5}, {98, 4}, {106, -6}, {104, -6}, {100, -1}},
	// Borneo
	{{109, 1}, {111, -3}, {116, -4}, {119, 1}, {117, 7}, {113, 3}},
	// New Guinea
	{{131, -1}, {138, -2}, {147, -6}, {150, -10}, {142, -9}, {138, -8}, {132, -4}},
	// Philippines
	{{120, 18}, {122, 18}, {126, 7}, {125, 6}, {120, 14}},
	// New Zealand
	{{172, -34}, {178, -38}, {175, -42}, {168, -46}, {167, -45}, {172, -40}, {173, -36}},
}

type ring struct {
	points         [][2]float64
	minLon, maxLon float64
	minLat, maxLat float64
}

var rings = buildRings(continents)

func buildRings(src [][][2]float64) []ring {
	out := make([]ring, 0, len(src))
	for _, pts := range src {
		r := ring{points: pts, minLon: 180, maxLon: -180, minLat: 90, maxLat: -90}
		for _, p := range pts {
			r.minLon = min(r.minLon, p[0])
			r.maxLon = max(r.maxLon, p[0])
			r.minLat = min(r.minLat, p[1])
			r.maxLat = max(r.maxLat, p[1])
		}
		out = append(out, r)
	}
	return out
}

// IsLand reports whether (lat, lon) falls inside one of the coarse outlines.
func IsLand(lat, lon float64) bool {
	lon = wrapLon(lon)
	for _, r := range rings {
		if lon < r.minLon || lon > r.maxLon || lat < r.minLat || lat > r.maxLat {
			continue
		}
		if r.contains(lon, lat) {
			return true
		}
	}
	return false
}

// contains is the even-odd ray casting test.
func (r ring) contains(x, y float64) bool {
	inside := false
	pts := r.points
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		xi, yi := pts[i][0], pts[i][1]
		xj, yj := pts[j][0], pts[j][1]
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}
