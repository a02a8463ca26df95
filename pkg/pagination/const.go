package pagination

// ResultsLimitDefault is the largest result window a caller can page through
const ResultsLimitDefault = 500

// PageSizeDefault is the number of results returned per page
const PageSizeDefault = 50
