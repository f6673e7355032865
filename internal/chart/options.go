package chart

// Options holds the user-tunable look and feel of the averages chart. Field
// names follow the keys accepted in an options file.
type Options struct {
	JSONSource string `yaml:"json_source" validate:"required"`
	RenderTo   string `yaml:"render_to" validate:"required"`
	Title      string `yaml:"title"`
	ShowLegend bool   `yaml:"show_legend"`

	AvTempRangeLabel   string  `yaml:"av_temp_range_label"`
	AvTempRangeColor   string  `yaml:"av_temp_range_color"`
	AvTempRangeOpacity float64 `yaml:"av_temp_range_opacity" validate:"gte=0,lte=1"`
	AvTempLabel        string  `yaml:"av_temp_label"`
	AvTempColor        string  `yaml:"av_temp_color"`
	MaxTempLabel       string  `yaml:"max_temp_label"`
	MaxTempColor       string  `yaml:"max_temp_color"`
	MinTempLabel       string  `yaml:"min_temp_label"`
	MinTempColor       string  `yaml:"min_temp_color"`
	AvgRainfallLabel   string  `yaml:"avg_rainfall_label"`
	AvgRainfallColor   string  `yaml:"avg_rainfall_color"`

	BackgroundColorStop1 string `yaml:"background_color_stop1"`
	BackgroundColorStop2 string `yaml:"background_color_stop2"`

	MarkerSymbol  string `yaml:"marker_symbol" validate:"omitempty,oneof=circle square diamond triangle triangle-down"`
	MarkerEnabled bool   `yaml:"marker_enabled"`

	UpdatedAlign    string  `yaml:"updated_align" validate:"omitempty,oneof=left center right"`
	UpdatedFontSize string  `yaml:"updated_font_size"`
	UpdatedXOffset  float64 `yaml:"updated_x_offset"`

	Months []string `yaml:"months" validate:"len=12"`

	XAxisLineColor  string  `yaml:"x_axis_line_color"`
	XAxisLineWidth  float64 `yaml:"x_axis_line_width" validate:"gte=0"`
	XAxisTitleColor string  `yaml:"x_axis_title_color"`
	XAxisTitleFont  string  `yaml:"x_axis_title_font"`
	YAxisLineColor  string  `yaml:"y_axis_line_color"`
	YAxisLineWidth  float64 `yaml:"y_axis_line_width" validate:"gte=0"`
	YAxisTitleColor string  `yaml:"y_axis_title_color"`
	YAxisTitleFont  string  `yaml:"y_axis_title_font"`

	EnableTooltip   bool   `yaml:"enable_tooltip"`
	TooltipFontSize string `yaml:"tooltip_font_size"`
}

const axisTitleFont = "bold 12px Lucida Grande, Lucida Sans Unicode, Verdana, Arial, Helvetica, sans-serif"

// DefaultOptions returns the stock averages chart options.
func DefaultOptions() Options {
	return Options{
		JSONSource: "json/averages.json",
		RenderTo:   "monthaveragesplot",
		Title:      "Monthly Temperature and Rainfall Averages",
		ShowLegend: true,

		AvTempRangeLabel:   "Mean Temp Range",
		AvTempRangeColor:   "#CC3399",
		AvTempRangeOpacity: 0.4,
		AvTempLabel:        "Mean Temp",
		AvTempColor:        "#BA55D3",
		MaxTempLabel:       "Max Temp",
		MaxTempColor:       "#FF0000",
		MinTempLabel:       "Min Temp",
		MinTempColor:       "#0000FF",
		AvgRainfallLabel:   "Avg Rainfall",
		AvgRainfallColor:   "#72B2C4",

		BackgroundColorStop1: "#FCFFC5",
		BackgroundColorStop2: "#E0E0FF",

		MarkerSymbol:  "circle",
		MarkerEnabled: false,

		UpdatedAlign:    "right",
		UpdatedFontSize: "10px",
		UpdatedXOffset:  -25,

		Months: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},

		XAxisLineColor:  "#555",
		XAxisLineWidth:  1,
		XAxisTitleColor: "#555",
		XAxisTitleFont:  axisTitleFont,
		YAxisLineColor:  "#555",
		YAxisLineWidth:  1,
		YAxisTitleColor: "#555",
		YAxisTitleFont:  axisTitleFont,

		EnableTooltip:   true,
		TooltipFontSize: "10px",
	}
}
