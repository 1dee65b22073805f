package brew

import "slices"

var sampleLog = []Record{
	{
		Number: 1, Name: "Citra Pale Ale", Style: "American Pale Ale",
		VolumeL: Some(20.0), OG: Some(1.052), FG: Some(1.011), ABV: Some(5.4), IBU: Some(38.0),
		SRM: Some(6), Clarity: "Clear", BrewDate: "2024-01-13", BottleDate: "2024-02-03",
	},
	{
		Number: 2, Name: "Midnight Oat Stout", Style: "Oatmeal Stout",
		VolumeL: Some(19.0), OG: Some(1.060), FG: Some(1.016), ABV: Some(5.8), IBU: Some(32.0),
		SRM: Some(38), Clarity: "Opaque", BrewDate: "2024-02-10", BottleDate: "2024-03-09",
	},
	{
		Number: 3, Name: "Backyard Hefe", Style: "Weissbier",
		VolumeL: Some(21.0), OG: Some(1.049), FG: Some(1.012), ABV: Some(4.9), IBU: Some(13.0),
		SRM: Some(4), Clarity: "Hazy", BrewDate: "2024-03-16", BottleDate: "2024-04-01",
	},
	{
		Number: 4, Name: "Copper Kettle Red", Style: "Irish Red Ale",
		VolumeL: Some(20.5), OG: Some(1.054), FG: Some(1.013), ABV: Some(5.4), IBU: Some(24.0),
		SRM: Some(15), Clarity: "Brilliant", BrewDate: "2024-05-04", BottleDate: "2024-05-25",
	},
	{
		Number: 5, Name: "Cloister Dubbel", Style: "Belgian Dubbel",
		VolumeL: Some(18.5), OG: Some(1.066), FG: Some(1.010), ABV: Some(7.3), IBU: Some(20.0),
		SRM: Some(17), Clarity: "Clear", BrewDate: "2024-06-22", BottleDate: "2024-07-27",
	},
	{
		Number: 6, Name: "Farmhouse Saison", Style: "Saison",
		VolumeL: Some(19.0), OG: Some(1.050), FG: Some(1.004), ABV: Some(6.0), IBU: Some(28.0),
		SRM: Some(10), Clarity: "Hazy", BrewDate: "2024-08-10", BottleDate: "2024-09-14",
	},
	{
		Number: 7, Name: "Campfire Porter", Style: "Robust Porter",
		VolumeL: Some(19.5), OG: Some(1.058), FG: Some(1.015), ABV: Some(5.6), IBU: Some(35.0),
		SRM: Some(30), Clarity: "Opaque", BrewDate: "2024-09-28", BottleDate: "2024-10-26",
	},
	{
		Number: 8, Name: "Tart Cherry Sour", Style: "Fruited Sour",
		VolumeL: Some(15.0), OG: Some(1.048), FG: Some(1.008), ABV: Some(5.3), IBU: Some(0.0),
		SRM: Some(20), Clarity: "Clear", BrewDate: "2024-10-19", BottleDate: "2024-12-21",
	},
	{
		Number: 9, Name: "Juice Box NEIPA", Style: "Hazy IPA",
		VolumeL: Some(20.0), OG: Some(1.064), FG: Some(1.014), ABV: Some(6.6), IBU: Some(45.0),
		SRM: Some(5), Clarity: "Hazy", BrewDate: "2024-11-09", BottleDate: "2024-12-01",
	},
	{
		Number: 10, Name: "Winter Warmer", Style: "Old Ale",
		VolumeL: Some(19.0), OG: Some(1.078),
		SRM: Some(22), BrewDate: "2024-12-14",
	},
}

// SampleLog returns the fixed brew log in entry order. The slice is a copy;
// records are values so callers cannot reach the shared literal.
func SampleLog() []Record {
	return slices.Clone(sampleLog)
}
