package site

// pageTemplate holds the layout and one named template per page section.
// Section templates receive the whole PageView.
const pageTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.Site.Lab.Name}}</title>
  <link rel="stylesheet" href="{{asset "style.css"}}">
</head>
<body data-page="{{.Page}}"{{if .Live}} data-live="1"{{end}}{{if .Reload}} data-reload="1"{{end}}>
  <header class="site-header">
    <div class="container nav">
      <a class="brand" href="{{(index .Nav 0).Href}}">
        <span class="brand-mark" id="brandMark">{{.Site.Lab.ShortName}}</span>
        <span class="brand-name" id="brandName">{{.Site.Lab.Name}}</span>
      </a>
      <button class="nav-toggle" type="button" aria-expanded="false" aria-controls="nav-menu" aria-label="Toggle navigation">&#9776;</button>
      <nav class="nav-menu" id="nav-menu">
        {{- range .Nav}}
        <a href="{{.Href}}"{{if .Active}} class="active" aria-current="page"{{end}}>{{.Label}}</a>
        {{- end}}
      </nav>
    </div>
  </header>
  <main id="main">
  {{- if .Error}}
    {{template "error" .}}
  {{- else if .Home}}
    {{template "home" .}}
  {{- else if .Members}}
    {{template "members" .}}
  {{- else if .Projects}}
    {{template "projects" .}}
  {{- else if .Publications}}
    {{template "publications" .}}
  {{- else if .Gallery}}
    {{template "gallery" .}}
  {{- else if .Contact}}
    {{template "contact" .}}
  {{- end}}
  </main>
  <footer class="site-footer">
    <div class="container footer">
      <div><strong id="footerLabName">{{.Site.Lab.Name}}</strong>{{with .Site.Lab.Org}} &middot; <span id="footerOrg">{{.}}</span>{{end}}</div>
      <div class="footer-links" id="footerLinks">{{range .Site.FooterLinks}}{{template "link" .}}{{end}}</div>
      <div class="muted">&copy; <span id="year">{{.Year}}</span></div>
    </div>
  </footer>
  <script src="{{asset "script.js"}}"></script>
</body>
</html>
{{end}}

{{define "link"}}<a class="link" href="{{.Href}}"{{if .External}} target="_blank" rel="noopener"{{end}}>{{.Label}}</a>{{end}}

{{define "noresults"}}<div class="card no-results" id="noResults"><div class="card-title">No results</div><p class="muted">Try a different search or filter.</p></div>{{end}}

{{define "error"}}<div class="container page error-panel" role="alert">
      <div class="card glass"><div class="card-title">Error</div><p class="muted">{{.Error}}</p></div>
    </div>{{end}}

{{define "home"}}{{with .Home}}<section class="hero container" data-section="hero">
      <div class="hero-copy">
        {{with .Lab.Kicker}}<p class="kicker" id="heroKicker">{{.}}</p>{{end}}
        <h1 id="heroTitle">{{.Lab.Name}}</h1>
        {{with .Lab.Lead}}<p class="lead" id="heroLead">{{.}}</p>{{end}}
        {{if .Lab.Keywords}}<ul class="chips" id="heroChips">{{range .Lab.Keywords}}<li>{{.}}</li>{{end}}</ul>{{end}}
        {{if .Hero.CTA}}<div class="cta" id="heroCta">{{range .Hero.CTA}}<a class="btn{{if .Primary}} primary{{end}}" href="{{.Href}}">{{.Label}}</a>{{end}}</div>{{end}}
        {{if .Hero.Stats}}<div class="stats" id="heroStats">{{range .Hero.Stats}}<div class="stat"><div class="stat-num">{{.Value}}</div><div class="stat-label">{{.Label}}</div></div>{{end}}</div>{{end}}
      </div>
      {{with .Carousel}}{{template "carousel" .}}{{end}}
    </section>
    {{if .Hero.Highlights}}<section class="container section" data-section="highlights">
      <div class="section-head"><span class="badge" id="heroBadge">{{.Lab.HeroBadge}}</span>{{with .Lab.HeroNote}}<p class="muted" id="heroNote">{{.}}</p>{{end}}</div>
      <div class="grid features" id="highlightsGrid">{{range .Hero.Highlights}}
        <div class="feature glass"><h3>{{.Title}}</h3><p class="muted">{{.Desc}}</p></div>{{end}}
      </div>
    </section>{{end}}
    <section class="container section" data-section="news">
      <h2>News</h2>
      <div class="grid cards" id="newsList">{{range .News}}
        <article class="card glass" data-card>
          <div class="card-top"><span class="pill">{{.Date}}</span></div>
          <div class="card-title">{{.Title}}</div>
          {{with .Desc}}<p class="muted">{{.}}</p>{{end}}
          {{with .Link}}{{template "link" .}}{{end}}
        </article>{{else}}
        <div class="card"><p class="muted">No news yet.</p></div>{{end}}
      </div>
    </section>{{end}}{{end}}

{{define "carousel"}}<div class="carousel" id="heroCarousel" data-section="carousel" data-index="{{.Index}}" data-interval="{{.IntervalMS}}" data-threshold="{{.Threshold}}" aria-roledescription="carousel">
        <div class="carousel-track">{{range .Slides}}
          <figure class="slide{{if .Active}} active{{end}}" id="{{.Anchor}}" data-index="{{.Index}}"{{if not .Active}} aria-hidden="true"{{end}}>
            {{if .Link}}<a href="{{.Link}}">{{end}}<img src="{{.Img}}" alt="{{.Title}}" decoding="async">{{if .Link}}</a>{{end}}
            <figcaption><div class="slide-title">{{.Title}}</div>{{with .Caption}}<div class="muted">{{.}}</div>{{end}}</figcaption>
          </figure>{{end}}
        </div>
        {{if gt .Count 1}}<a class="carousel-btn prev" href="{{.PrevHref}}" data-action="prev" aria-label="Previous slide">&lsaquo;</a>
        <a class="carousel-btn next" href="{{.NextHref}}" data-action="next" aria-label="Next slide">&rsaquo;</a>
        <div class="dots">{{range .Dots}}<a class="dot{{if .Active}} active{{end}}" href="{{.Href}}" data-index="{{.Index}}" aria-label="Slide {{inc .Index}}"></a>{{end}}</div>{{end}}
      </div>{{end}}

{{define "members"}}{{with .Members}}<section class="container page" data-section="members">
      <h1>Members</h1>
      {{- range .Groups}}{{if .Members}}
      <h2>{{.Title}}</h2>
      <div class="grid members" id="{{.ID}}">{{range .Members}}
        <article class="member card glass" data-card data-category="{{.Category}}">
          {{if .HasPhoto}}<img class="avatar-img" src="{{.Photo}}" alt="{{or .Name "Member"}} photo" loading="lazy" decoding="async">{{else}}<div class="avatar">{{.Initials}}</div>{{end}}
          <div>
            <div class="card-title">{{.Name}}</div>
            <p class="muted">{{.Role}}{{if and .Role .Bio}} &middot; {{end}}{{.Bio}}</p>
            {{if .Links}}<div class="link-row">{{range .Links}}{{template "link" .}}{{end}}</div>{{end}}
          </div>
        </article>{{end}}
      </div>{{end}}{{end}}
    </section>{{end}}{{end}}

{{define "projects"}}{{$live := .Live}}{{with .Projects}}{{$f := .Filter}}<section class="container page" data-section="projects">
      <h1>Research</h1>
      {{if $live}}<form class="filters" method="get">
        <input type="search" name="q" id="projectSearch" value="{{$f.Query}}" placeholder="Search research">
        <select name="tag" id="projectTag"><option value="">All tags</option>{{range .Options.Tags}}<option value="{{.}}"{{if eq . $f.Tag}} selected{{end}}>{{.}}</option>{{end}}</select>
        <button class="btn" type="submit">Filter</button>
      </form>{{end}}
      <div class="grid cards" id="projectsList">{{range .Items}}
        <article class="card glass" data-card>
          <div class="card-title">{{.Title}}</div>
          {{with .Summary}}<p class="muted">{{.}}</p>{{end}}
          {{if .Tags}}<div class="tag-row">{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</div>{{end}}
          {{if .Links}}<div class="link-row">{{range .Links}}{{template "link" .}}{{end}}</div>{{end}}
        </article>{{else}}
        {{template "noresults"}}{{end}}
      </div>
    </section>{{end}}{{end}}

{{define "publications"}}{{$live := .Live}}{{with .Publications}}{{$f := .Filter}}<section class="container page" data-section="publications">
      <h1>Publications</h1>
      {{if $live}}<form class="filters" method="get">
        <input type="search" name="q" id="pubSearch" value="{{$f.Query}}" placeholder="Search title, authors, venue">
        <select name="year" id="pubYear"><option value="">All years</option>{{range .Options.Years}}<option value="{{.}}"{{if eq (itoa .) $f.Year}} selected{{end}}>{{.}}</option>{{end}}</select>
        <select name="type" id="pubType"><option value="">All types</option>{{range .Options.Types}}<option value="{{.}}"{{if eq . $f.Type}} selected{{end}}>{{.}}</option>{{end}}</select>
        <select name="region" id="pubRegion"><option value="">All regions</option>{{range .Options.Regions}}<option value="{{.}}"{{if eq . $f.Region}} selected{{end}}>{{.}}</option>{{end}}</select>
        <select name="tag" id="pubMark"><option value="">All marks</option>{{range .Options.Tags}}<option value="{{.}}"{{if eq . $f.Tag}} selected{{end}}>{{markLabel .}}</option>{{end}}</select>
        <button class="btn" type="submit">Filter</button>
      </form>{{end}}
      <p class="muted count">{{.Count}} of {{.Total}}</p>
      <ol class="pub-groups" id="pubList">{{range .Groups}}
        <li class="pub-group" data-year="{{.Year}}">
          <h2 class="pub-year">{{.Label}}</h2>
          <ul class="pubs">{{range .Items}}
            <li class="pub glass" data-card>
              <div class="pub-head">
                <div class="pub-title">{{.Title}}</div>
                {{with .AuthorLine}}<div class="pub-meta muted">{{.}}</div>{{end}}
              </div>
              <div class="pub-sub muted">{{with .YearLabel}}<span class="pill">{{.}}</span>{{end}}{{with .Venue}}<span class="pill pill2">{{.}}</span>{{end}}{{with .Type}}<span class="pill pill3">{{.}}</span>{{end}}{{with .Region}}<span class="pill pill4">{{.}}</span>{{end}}</div>
              {{if .MarkChips}}<div class="mark-row">{{range .MarkChips}}<span class="mark mark-{{.Key}}">{{.Label}}</span>{{end}}</div>{{end}}
              {{if .Keywords}}<div class="tag-row">{{range .Keywords}}<span class="tag">{{.}}</span>{{end}}</div>{{end}}
              {{with .DetailHTML}}<details class="pub-detail"><summary>Details</summary><div class="prose">{{.}}</div></details>{{end}}
              {{if .Links}}<div class="link-row">{{range .Links}}{{template "link" .}}{{end}}</div>{{end}}
            </li>{{end}}
          </ul>
        </li>{{end}}
      </ol>
      {{if .Empty}}{{template "noresults"}}{{end}}
    </section>{{end}}{{end}}

{{define "gallery"}}{{$live := .Live}}{{with .Gallery}}{{$f := .Filter}}<section class="container page" data-section="gallery">
      <h1>Gallery</h1>
      {{if $live}}<form class="filters" method="get">
        <input type="search" name="q" id="gallerySearch" value="{{$f.Query}}" placeholder="Search photos">
        <select name="tag" id="galleryTag"><option value="">All tags</option>{{range .Options.Tags}}<option value="{{.}}"{{if eq . $f.Tag}} selected{{end}}>{{.}}</option>{{end}}</select>
        <button class="btn" type="submit">Filter</button>
      </form>{{end}}
      <div class="gallery-grid" id="galleryGrid">{{range .Cards}}
        <a class="gallery-item" href="{{.Href}}" data-card data-index="{{.Index}}" aria-label="{{or .Title "Photo"}}: view larger">
          <img class="gallery-thumb" src="{{.Thumb}}" alt="{{or .Title "Gallery photo"}}" loading="lazy" decoding="async">
          <div class="gallery-cap"><div class="gallery-title">{{.Title}}</div><div class="gallery-sub muted">{{.Date}}</div></div>
        </a>{{else}}
        {{template "noresults"}}{{end}}
      </div>
      {{if $live}}{{template "lightbox" .}}{{end}}
    </section>{{end}}{{end}}

{{define "lightbox"}}<div class="lightbox{{if .Lightbox.Open}} open{{end}}" id="lightbox" role="dialog" aria-modal="true" aria-hidden="{{if .Lightbox.Open}}false{{else}}true{{end}}">
        <a class="lightbox-backdrop" href="{{.Close}}" data-close="1" aria-label="Close"></a>
        <div class="lightbox-panel">
          <a class="lb-close" href="{{.Close}}" data-close="1" aria-label="Close">&times;</a>
          <a class="lb-nav prev" id="lbPrev" href="{{.PrevHref}}" aria-label="Previous photo">&lsaquo;</a>
          <img id="lightboxImg" src="{{.Lightbox.Src}}" alt="{{.Lightbox.Alt}}">
          <a class="lb-nav next" id="lbNext" href="{{.NextHref}}" aria-label="Next photo">&rsaquo;</a>
          <div class="lightbox-meta">
            <div class="card-title" id="lightboxTitle">{{.Lightbox.Title}}</div>
            <p class="muted" id="lightboxDesc">{{.Lightbox.Desc}}</p>
            <div class="tag-row" id="lightboxTags">{{range .Lightbox.Tags}}<span class="tag">{{.}}</span>{{end}}</div>
          </div>
        </div>
      </div>{{end}}

{{define "contact"}}{{with .Contact}}<section class="container page" data-section="contact">
      <h1>Contact</h1>
      <div class="grid two">
        <div class="card glass" id="contactCard">
          <div class="card-title">Address</div>
          <div class="muted">{{range .Contact.AddressLines}}<div>{{.}}</div>{{end}}</div>
          <div class="spacer"></div>
          <div class="card-title">Email</div>
          <div class="muted">{{with .Contact.Email}}<a class="link" href="mailto:{{.}}">{{.}}</a>{{else}}-{{end}}</div>
          <div class="spacer"></div>
          <div class="card-title">Links</div>
          <div class="link-row">{{range .Contact.Links}}{{template "link" .}}{{else}}<span class="muted">-</span>{{end}}</div>
        </div>
        <div class="card glass" id="recruitCard">
          <div class="card-title">{{.Recruiting.Title}}</div>
          {{with .RecruitingBody}}<div class="muted prose">{{.}}</div>{{end}}
          {{if .Recruiting.Items}}<ul class="bullets">{{range .Recruiting.Items}}<li>{{.}}</li>{{end}}</ul>{{end}}
        </div>
      </div>
    </section>{{end}}{{end}}
`

// cssContent is the stylesheet shared by every page.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #f7f8fb;
  --bg-card: rgba(255,255,255,0.78);
  --text: #1d2130;
  --text-muted: #5c6478;
  --border: #e2e6ef;
  --accent: #3b5bdb;
  --accent-light: #edf2ff;
  --pill: #eef1f7;
  --radius: 14px;
  --shadow: 0 1px 3px rgba(0,0,0,0.06);
  --shadow-lg: 0 12px 32px rgba(20,30,60,0.18);
  --max-width: 1120px;
}

@media (prefers-color-scheme: dark) {
  :root {
    --bg: #12141c;
    --bg-card: rgba(30,33,46,0.85);
    --text: #e4e7f0;
    --text-muted: #9aa2b8;
    --border: #2a2f42;
    --accent: #7b9cff;
    --accent-light: #1c2340;
    --pill: #22273a;
  }
}

/* ============ Base ============ */
* { box-sizing: border-box; }
html, body { margin: 0; padding: 0; }
body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Noto Sans KR", sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.6;
}
body.no-scroll { overflow: hidden; }
a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }
h1 { font-size: 2rem; margin: 0 0 1rem; }
h2 { font-size: 1.35rem; margin: 2rem 0 1rem; }
.container { max-width: var(--max-width); margin: 0 auto; padding: 0 1.25rem; }
.page, .section { padding-top: 2rem; padding-bottom: 2rem; }
.muted { color: var(--text-muted); }
.spacer { height: 1rem; }

/* ============ Header / Nav ============ */
.site-header {
  position: sticky; top: 0; z-index: 10;
  background: var(--bg-card);
  backdrop-filter: blur(10px);
  border-bottom: 1px solid var(--border);
}
.nav { display: flex; align-items: center; justify-content: space-between; height: 64px; }
.brand { display: flex; align-items: center; gap: 0.6rem; color: var(--text); font-weight: 700; }
.brand:hover { text-decoration: none; }
.brand-mark {
  background: var(--accent); color: #fff;
  border-radius: 8px; padding: 0.2rem 0.5rem; font-size: 0.85rem; letter-spacing: 0.05em;
}
.nav-menu { display: flex; gap: 1.1rem; }
.nav-menu a { color: var(--text-muted); font-weight: 500; }
.nav-menu a.active { color: var(--accent); }
.nav-toggle { display: none; background: none; border: 0; font-size: 1.4rem; color: var(--text); cursor: pointer; }

@media (max-width: 760px) {
  .nav-toggle { display: block; }
  .nav-menu {
    display: none; position: absolute; top: 64px; left: 0; right: 0;
    flex-direction: column; padding: 1rem 1.25rem;
    background: var(--bg); border-bottom: 1px solid var(--border);
  }
  .nav-menu.open { display: flex; }
}

/* ============ Cards / Grid ============ */
.grid { display: grid; gap: 1rem; }
.grid.cards, .grid.features { grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); }
.grid.members { grid-template-columns: repeat(auto-fill, minmax(320px, 1fr)); }
.grid.two { grid-template-columns: repeat(auto-fit, minmax(300px, 1fr)); }
.card, .feature, .pub {
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: var(--radius);
  padding: 1.1rem 1.2rem;
  box-shadow: var(--shadow);
}
.glass { backdrop-filter: blur(8px); }
.card-top { margin-bottom: 0.4rem; }
.card-title { font-weight: 650; margin-bottom: 0.3rem; }
.no-results { text-align: center; grid-column: 1 / -1; }
.error-panel .card { border-color: #e03131; }

.pill, .tag, .mark, .badge {
  display: inline-block; border-radius: 999px;
  padding: 0.1rem 0.6rem; font-size: 0.8rem;
  background: var(--pill); margin: 0 0.3rem 0.3rem 0;
}
.pill2 { background: var(--accent-light); }
.pill3 { background: #fff3bf; color: #5c4400; }
.pill4 { background: #d3f9d8; color: #1b5e20; }
.badge { background: var(--accent); color: #fff; font-weight: 600; }
.mark { background: #ffe3e3; color: #862e2e; font-weight: 600; }
.mark-best, .mark-award { background: #ffd43b; color: #4a3500; }
.tag-row, .mark-row, .link-row { margin-top: 0.5rem; display: flex; flex-wrap: wrap; gap: 0.25rem 0.8rem; }
.link { font-weight: 500; }

/* ============ Hero ============ */
.hero { display: grid; grid-template-columns: 1.1fr 1fr; gap: 2rem; align-items: center; padding-top: 3rem; padding-bottom: 2rem; }
@media (max-width: 900px) { .hero { grid-template-columns: 1fr; } }
.kicker { text-transform: uppercase; letter-spacing: 0.08em; color: var(--accent); font-weight: 600; margin: 0; }
.hero h1 { font-size: 2.6rem; margin: 0.3rem 0 0.8rem; }
.lead { font-size: 1.1rem; color: var(--text-muted); }
.chips { list-style: none; padding: 0; display: flex; flex-wrap: wrap; gap: 0.4rem; }
.chips li { background: var(--pill); border-radius: 999px; padding: 0.15rem 0.7rem; font-size: 0.85rem; }
.cta { display: flex; gap: 0.6rem; margin: 1.2rem 0; }
.btn {
  display: inline-block; border: 1px solid var(--border); border-radius: 10px;
  padding: 0.5rem 1rem; background: var(--bg-card); color: var(--text); font-weight: 600; cursor: pointer;
}
.btn.primary { background: var(--accent); border-color: var(--accent); color: #fff; }
.stats { display: flex; gap: 1.5rem; margin-top: 1rem; }
.stat-num { font-size: 1.6rem; font-weight: 700; }
.stat-label { color: var(--text-muted); font-size: 0.85rem; }
.section-head { display: flex; align-items: center; gap: 1rem; margin-bottom: 1rem; }

/* ============ Carousel ============ */
.carousel { position: relative; border-radius: var(--radius); overflow: hidden; box-shadow: var(--shadow-lg); touch-action: pan-y; }
.carousel-track { display: flex; overflow-x: auto; scroll-snap-type: x mandatory; scrollbar-width: none; }
.slide { flex: 0 0 100%; margin: 0; scroll-snap-align: start; position: relative; }
.slide img { width: 100%; aspect-ratio: 16 / 10; object-fit: cover; display: block; }
.slide figcaption {
  position: absolute; left: 0; right: 0; bottom: 0; padding: 1rem 1.2rem 1.6rem;
  background: linear-gradient(transparent, rgba(0,0,0,0.65)); color: #fff;
}
.slide figcaption .muted { color: rgba(255,255,255,0.8); }
.slide-title { font-weight: 650; }
body[data-live] .carousel-track { overflow: hidden; }
body[data-live] .slide:not(.active) { display: none; }
.carousel-btn {
  position: absolute; top: 50%; transform: translateY(-50%);
  width: 2.2rem; height: 2.2rem; border-radius: 50%;
  background: rgba(0,0,0,0.35); color: #fff; font-size: 1.4rem;
  display: flex; align-items: center; justify-content: center;
}
.carousel-btn:hover { text-decoration: none; background: rgba(0,0,0,0.55); }
.carousel-btn.prev { left: 0.6rem; }
.carousel-btn.next { right: 0.6rem; }
.dots { position: absolute; bottom: 0.5rem; left: 0; right: 0; display: flex; justify-content: center; gap: 0.4rem; }
.dot { width: 8px; height: 8px; border-radius: 50%; background: rgba(255,255,255,0.5); }
.dot.active { background: #fff; width: 20px; border-radius: 4px; }

/* ============ Members ============ */
.member { display: flex; gap: 1rem; align-items: flex-start; }
.avatar, .avatar-img { width: 64px; height: 64px; border-radius: 50%; flex-shrink: 0; }
.avatar-img { object-fit: cover; }
.avatar {
  display: flex; align-items: center; justify-content: center;
  background: var(--accent-light); color: var(--accent); font-weight: 700; font-size: 1.2rem;
}

/* ============ Filters ============ */
.filters { display: flex; flex-wrap: wrap; gap: 0.5rem; margin-bottom: 1.2rem; }
.filters input, .filters select {
  padding: 0.5rem 0.7rem; border: 1px solid var(--border); border-radius: 10px;
  background: var(--bg-card); color: var(--text); font-size: 0.95rem;
}
.filters input[type="search"] { flex: 1 1 240px; }
.count { font-size: 0.85rem; }

/* ============ Publications ============ */
.pub-groups, .pubs { list-style: none; padding: 0; margin: 0; }
.pubs { display: grid; gap: 0.8rem; }
.pub-year { border-bottom: 1px solid var(--border); padding-bottom: 0.3rem; }
.pub-title { font-weight: 650; }
.pub-meta { font-size: 0.92rem; }
.pub-sub { margin-top: 0.4rem; }
.pub-detail summary { cursor: pointer; color: var(--accent); margin-top: 0.5rem; }
.prose pre { overflow-x: auto; padding: 0.8rem; border-radius: 8px; font-size: 0.85rem; }

/* ============ Gallery ============ */
.gallery-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 0.9rem; }
.gallery-item {
  display: block; border-radius: var(--radius); overflow: hidden; color: var(--text);
  background: var(--bg-card); border: 1px solid var(--border);
}
.gallery-item:hover { text-decoration: none; box-shadow: var(--shadow-lg); }
.gallery-thumb { width: 100%; aspect-ratio: 4 / 3; object-fit: cover; display: block; }
.gallery-cap { padding: 0.6rem 0.8rem; }
.gallery-title { font-weight: 600; }
.gallery-sub { font-size: 0.82rem; }

.lightbox { position: fixed; inset: 0; z-index: 50; display: none; align-items: center; justify-content: center; }
.lightbox.open { display: flex; }
.lightbox-backdrop { position: absolute; inset: 0; background: rgba(0,0,0,0.75); }
.lightbox-panel {
  position: relative; max-width: min(92vw, 1100px); max-height: 92vh;
  background: var(--bg); border-radius: var(--radius); overflow: hidden; box-shadow: var(--shadow-lg);
}
.lightbox-panel img { display: block; max-width: 100%; max-height: 70vh; margin: 0 auto; }
.lightbox-meta { padding: 0.8rem 1.2rem 1.1rem; }
.lb-close { position: absolute; top: 0.4rem; right: 0.8rem; font-size: 1.8rem; color: #fff; z-index: 2; }
.lb-nav {
  position: absolute; top: 35%; font-size: 2.4rem; color: #fff; z-index: 2;
  padding: 0 0.7rem; text-shadow: 0 1px 4px rgba(0,0,0,0.6);
}
.lb-nav:hover, .lb-close:hover { text-decoration: none; }
.lb-nav.prev { left: 0; }
.lb-nav.next { right: 0; }

/* ============ Contact ============ */
.bullets { padding-left: 1.2rem; }

/* ============ Footer ============ */
.site-footer { border-top: 1px solid var(--border); margin-top: 3rem; }
.footer { display: flex; flex-wrap: wrap; justify-content: space-between; gap: 1rem; padding-top: 1.5rem; padding-bottom: 2rem; font-size: 0.9rem; }
.footer-links { display: flex; gap: 1rem; }
`

// jsContent applies server-pushed views to the DOM. Navigation state
// lives in the server session; the script only forwards input events.
const jsContent = `(function() {
  'use strict';

  // ============ Mobile Nav ============
  var toggle = document.querySelector('.nav-toggle');
  var menu = document.getElementById('nav-menu');
  if (toggle && menu) {
    toggle.addEventListener('click', function() {
      var open = menu.classList.toggle('open');
      toggle.setAttribute('aria-expanded', String(open));
    });
  }

  var body = document.body;
  if (!body.hasAttribute('data-live')) return;

  function connect(path, onMessage) {
    var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
    var ws = new WebSocket(proto + '//' + location.host + path);
    ws.addEventListener('message', function(e) {
      try { onMessage(JSON.parse(e.data)); } catch (err) { console.error(err); }
    });
    return {
      send: function(msg) {
        if (ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify(msg));
      }
    };
  }

  function setQuery(key, value) {
    var q = new URLSearchParams(location.search);
    if (value === null) q.delete(key); else q.set(key, String(value));
    var s = q.toString();
    history.replaceState(null, '', location.pathname + (s ? '?' + s : ''));
  }

  // ============ Filters ============
  document.querySelectorAll('form.filters select').forEach(function(sel) {
    sel.addEventListener('change', function() { sel.form.submit(); });
  });

  // ============ Gallery Lightbox ============
  var lb = document.getElementById('lightbox');
  var grid = document.getElementById('galleryGrid');
  if (lb && grid) {
    var lbImg = document.getElementById('lightboxImg');
    var lbTitle = document.getElementById('lightboxTitle');
    var lbDesc = document.getElementById('lightboxDesc');
    var lbTags = document.getElementById('lightboxTags');
    var isOpen = lb.classList.contains('open');

    var gallery = connect('/ws/gallery' + location.search, function(msg) {
      if (msg.type !== 'view') return;
      var v = msg.view;
      isOpen = v.open;
      lb.classList.toggle('open', v.open);
      lb.setAttribute('aria-hidden', String(!v.open));
      body.classList.toggle('no-scroll', v.open);
      lbImg.src = v.src;
      lbImg.alt = v.alt;
      lbTitle.textContent = v.title;
      lbDesc.textContent = v.desc;
      lbTags.innerHTML = '';
      (v.tags || []).forEach(function(t) {
        var s = document.createElement('span');
        s.className = 'tag';
        s.textContent = t;
        lbTags.appendChild(s);
      });
      setQuery('view', v.open ? v.index : null);
    });

    grid.addEventListener('click', function(e) {
      var item = e.target.closest('.gallery-item');
      if (!item) return;
      e.preventDefault();
      gallery.send({ type: 'open', index: Number(item.dataset.index) });
    });
    lb.addEventListener('click', function(e) {
      if (e.target.closest('[data-close]')) {
        e.preventDefault();
        gallery.send({ type: 'close' });
      } else if (e.target.closest('#lbPrev')) {
        e.preventDefault();
        gallery.send({ type: 'navigate', delta: -1 });
      } else if (e.target.closest('#lbNext')) {
        e.preventDefault();
        gallery.send({ type: 'navigate', delta: 1 });
      }
    });
    document.addEventListener('keydown', function(e) {
      if (!isOpen) return;
      if (e.key === 'Escape' || e.key === 'ArrowLeft' || e.key === 'ArrowRight') {
        e.preventDefault();
        gallery.send({ type: 'key', key: e.key });
      }
    });
  }

  // ============ Hero Carousel ============
  var carousel = document.getElementById('heroCarousel');
  if (carousel) {
    var slides = carousel.querySelectorAll('.slide');
    var dots = carousel.querySelectorAll('.dot');

    var hero = connect('/ws/carousel' + location.search, function(msg) {
      if (msg.type !== 'carousel') return;
      var v = msg.view;
      slides.forEach(function(s, i) {
        s.classList.toggle('active', i === v.index);
        s.setAttribute('aria-hidden', String(i !== v.index));
      });
      dots.forEach(function(d, i) { d.classList.toggle('active', i === v.index); });
      carousel.classList.toggle('paused', v.paused);
      carousel.dataset.index = v.index;
    });

    carousel.addEventListener('mouseenter', function() { hero.send({ type: 'pause' }); });
    carousel.addEventListener('mouseleave', function() { hero.send({ type: 'resume' }); });
    carousel.addEventListener('pointerdown', function(e) { hero.send({ type: 'pointerdown', x: e.clientX }); });
    carousel.addEventListener('pointerup', function(e) { hero.send({ type: 'pointerup', x: e.clientX }); });
    carousel.addEventListener('pointercancel', function() { hero.send({ type: 'pointercancel' }); });
    carousel.addEventListener('click', function(e) {
      var dot = e.target.closest('.dot');
      if (dot) {
        e.preventDefault();
        hero.send({ type: 'jump', index: Number(dot.dataset.index) });
        return;
      }
      var btn = e.target.closest('[data-action]');
      if (btn) {
        e.preventDefault();
        hero.send({ type: btn.dataset.action });
      }
    });
  }

  // ============ Live Reload ============
  if (body.hasAttribute('data-reload')) {
    connect('/ws/reload', function(msg) {
      if (msg.type === 'reload') location.reload();
    });
  }
})();
`
