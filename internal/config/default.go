package config

// DefaultConfig is the sample configuration written by `wallgen --init`.
// It demonstrates every section; the numeric values match the built-in
// defaults used when no config file is present.
const DefaultConfig = `# wallgen configuration
#
# [global] sets run-wide numbers. [colors] names hex colors for use in
# themes. Each [[themes]] is a weighted color list ("name" or "name:weight").
# Each [[entries]] restricts themes, patterns and tilings to a time window;
# start/end are HHMM clock values, and start > end wraps past midnight.

[global]
deviation = 20
weight = 40
size = 15.0
width = 1920
height = 1080
line-width = 1.0
line-color = "#000000"
delaunay-count = 1000
pattern-count = 5
stripe-var = 15
pattern-width = 40.0

[colors]
night-blue = "#0b1d3a"
dawn-pink = "#e8a6b8"
sand = "#e0c38c"
sea-green = "#2e8b6f"
dusk-orange = "#d96c3a"
charcoal = "#2f2f2f"

[[themes]]
name = "night"
colors = ["night-blue:3", "charcoal"]

[[themes]]
name = "day"
colors = ["sand:2", "sea-green:2", "dawn-pink"]

[[themes]]
name = "dusk"
colors = ["dusk-orange:2", "night-blue"]

[[entries]]
start = 600
end = 1100
themes = ["day"]
patterns = ["free-circles", "concentric-circles:2"]
tilings = ["hexagons:2", "triangles"]

[[entries]]
start = 1100
end = 2000
themes = ["day:3", "dusk"]
patterns = ["waves", "parallel-stripes", "free-triangles"]
tilings = ["squares-and-triangles", "delaunay:2", "pentagons"]

[[entries]]
start = 2000
end = 600
themes = ["night:4", "dusk"]
patterns = ["free-spirals", "crossed-stripes", "free-stripes"]
tilings = ["rhombus", "hexagons-and-triangles", "delaunay"]
`
