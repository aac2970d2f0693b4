package codec

// Endpoints and response markers of the upstream services. These are
// third-party contracts; none of them is documented beyond what the services
// return today.
const (
	bamBzEndpoint = "https://bam.bz/api/short"
	bamBzKey      = `"url"`

	bnGyEndpoint = "https://bn.gy/API.asmx/CreateUrl?real_url="
	bnGyOpen     = "<ShortenedUrl>"
	bnGyClose    = "</ShortenedUrl>"

	fifoCcEndpoint = "https://fifo.cc/api/v2?url="
	fifoCcKey      = `"shortner"`
	fifoCcBase     = "http://fifo.cc/"

	hecSuEndpoint = "https://hec.su/api?url="
	hecSuSuffix   = "&method=xml"
	hecSuOpen     = "<short>"
	hecSuClose    = "</short>"

	isGdEndpoint = "https://is.gd/create.php?format=simple&url="

	nowLinksEndpoint = "http://nowlinks.net/api?url="

	phxCoInEndpoint = "http://phx.co.in/shrink.asp?url="

	psbeCoEndpoint = "http://psbe.co/API.asmx/CreateUrl?real_url="
	psbeCoOpen     = "<ShortUrl>"
	psbeCoClose    = "</ShortUrl>"

	rddEndpoint = "https://readability.com/api/shortener/v1/urls"
	rddKey      = `"rdd_url"`

	rluEndpoint = "http://rlu.ru/index.sema?a=api&link="

	tinyURLEndpoint = "http://tinyurl.com/create.php?url="
	tinyURLMarker   = `data-clipboard-text="`
	tinyURLEnd      = `">`

	vGdEndpoint = "http://v.gd/create.php?format=simple&url="
)
