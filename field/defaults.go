package field

// builtinDefinitions is the table behind DefaultRegistry. 77E is kept
// although its format cannot compile; decoding it reports the definition
// error.
var builtinDefinitions = []Definition{
	{Tag: "11A", Format: ":4!c//3!a", Names: "(Qualifier)(Currency Code)"},
	{Tag: "12", Format: "3!n", Names: ""},
	{Tag: "13A", Format: ":4!c//3!c", Names: "(Qualifier)(Number Id)"},
	{Tag: "16R", Format: "16c", Names: "(Start of Block)"},
	{Tag: "16S", Format: "16c", Names: "(End of Block)"},
	{Tag: "19", Format: "17d", Names: "(Amount)"},
	{Tag: "19A", Format: ":4!c//[N]3!a15d", Names: "(Qualifier)(Sign)(Currency Code)(Amount)"},
	{Tag: "20", Format: "16x", Names: "(Reference)"},
	{Tag: "21", Format: "16x", Names: "(Related Reference)"},
	{Tag: "22F", Format: ":4!c/[8c]/4!c", Names: "(Qualifier)(Data Source Scheme)(Indicator)"},
	{Tag: "22H", Format: ":4!c//4!c", Names: "(Qualifier)(Indicator)"},
	{Tag: "23G", Format: "4!c[/4!c]", Names: "(Function)(Subfunction)"},
	{Tag: "25D", Format: ":4!c/[8c]/4!c", Names: "(Qualifier)(Data Source Scheme)(Status Code)"},
	{Tag: "28", Format: "5n[/2n]", Names: "(Page Number)(Indicator)"},
	{Tag: "32A", Format: "6!n3!a15d", Names: "(Date)(Currency)(Amount)"},
	{Tag: "35B", Format: "[ISIN1!e12!c]$[4*35x]", Names: "(Identification of Security)$(Description of Security)"},
	{Tag: "36B", Format: ":4!c//4!c/15d", Names: "(Qualifier)(Quantity Type Code)(Quantity)"},
	{Tag: "50K", Format: "[/34x]$4*35x", Names: "(Account)$(Name and Address)"},
	{Tag: "53D", Format: "[/1!a][/34x]$4*35x", Names: "(Party Identifier)$(Name and Address)"},
	{Tag: "59", Format: "[/34x]$4*35x", Names: "(Account)$(Name and Address)"},
	{Tag: "69A", Format: ":4!c//8!n/8!n", Names: "(Qualifier)(Start Date)(End Date)"},
	{Tag: "70F", Format: ":4!c//8000z", Names: "(Qualifier)(Narrative)"},
	{Tag: "70G", Format: ":4!c//10*35z", Names: "(Qualifier)(Narrative)"},
	{Tag: "71A", Format: "3!a", Names: "(Code)"},
	{Tag: "72", Format: "6*35x", Names: "(Narrative)"},
	{Tag: "77E", Format: "73x$[n*78x]", Names: "(Text)$(Text)"},
	{Tag: "79", Format: "35*50x", Names: "(Narrative)"},
	{Tag: "90A", Format: ":4!c//4!c/15d", Names: "(Qualifier)(Percentage Type Code)(Price)"},
	{Tag: "92B", Format: ":4!c//3!a/3!a/15d", Names: "(Qualifier)(First Currency Code)(Second Currency Code)(Rate)"},
	{Tag: "93B", Format: ":4!c/[8c]/4!c/[N]15d", Names: "(Qualifier)(Data Source Scheme)(Quantity Type Code)(Sign)(Balance)"},
	{Tag: "94B", Format: ":4!c/[8c]/4!c[/30x]", Names: "(Qualifier)(Data Source Scheme)(Place Code)(Narrative)"},
	{Tag: "95P", Format: ":4!c//4!a2!a2!c[3!c]", Names: "(Qualifier)(Identifier Code)"},
	{Tag: "95Q", Format: ":4!c//4*35x", Names: "(Qualifier)(Name and Address)"},
	{Tag: "95R", Format: ":4!c/8c/34x", Names: "(Qualifier)(Data Source Scheme)(Proprietary Code)"},
	{Tag: "97A", Format: ":4!c//35x", Names: "(Qualifier)(Account Number)"},
	{Tag: "98A", Format: ":4!c//8!n", Names: "(Qualifier)(Date)"},
	{Tag: "98C", Format: ":4!c//8!n6!n", Names: "(Qualifier)(Date)(Time)"},
	{Tag: "98E", Format: ":4!c//8!n6!n[,3n][/[N]2!n[2!n]]", Names: "(Qualifier)(Date)(Time)(Decimals)(UTC Sign)(UTC Indicator)"},
}
