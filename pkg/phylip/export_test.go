package phylip

var FmtName = fmtName
